package sequencer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	c := NewComposition("alice")
	c.SetTempo(90)
	c.Signature = TimeSignature{3, 4}
	c.AddTrack("bass")
	c.SetInstrument(1, 33)
	c.AddNote(0, 60, 100, 0, 1)
	c.AddNote(1, 36, 90, 0.5, 2.25)

	if err := store.Save(c); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load("alice")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got.Name != c.Name || got.Tempo != 90 || got.Signature != c.Signature {
		t.Errorf("header mismatch: %+v", got)
	}
	if len(got.Tracks) != 2 {
		t.Fatalf("got %d tracks, want 2", len(got.Tracks))
	}
	if got.Tracks[1].Name != "bass" || got.Tracks[1].Instrument != 33 {
		t.Errorf("track 1 = %+v", got.Tracks[1])
	}
	n := got.Tracks[1].Notes[0]
	if n.Pitch != 36 || n.Velocity != 90 || n.Start != 0.5 || n.Duration != 2.25 || n.Track != 1 {
		t.Errorf("note = %+v", n)
	}
}

func TestStoreLoadMissing(t *testing.T) {
	store := NewStore(t.TempDir())
	if _, err := store.Load("nobody"); !os.IsNotExist(err) {
		t.Errorf("got %v, want an os.IsNotExist error", err)
	}
}

func TestStoreLoadRepairsFields(t *testing.T) {
	dir := t.TempDir()
	record := `{
  "tempo": 9999,
  "tracks": [
    {
      "notes": [
        {"note": 200, "velocity": -3, "start_time": 0, "duration": 1, "track": 0},
        {"note": 60, "velocity": 100, "start_time": -1, "duration": 1, "track": 0},
        {"note": 60, "velocity": 100, "start_time": 0, "duration": 0, "track": 0}
      ]
    }
  ]
}`
	if err := os.WriteFile(filepath.Join(dir, "alice.json"), []byte(record), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(dir)
	c, err := store.Load("alice")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if c.Tempo != MaxTempo {
		t.Errorf("tempo = %d, want clamped to %d", c.Tempo, MaxTempo)
	}
	if c.Signature != DefaultSignature() {
		t.Errorf("signature = %v, want default 4/4", c.Signature)
	}
	if c.Name != "alice's composition" {
		t.Errorf("name = %q, want default", c.Name)
	}
	if c.Tracks[0].Name != "Track 1" {
		t.Errorf("track name = %q, want default", c.Tracks[0].Name)
	}
	notes := c.Tracks[0].Notes
	if len(notes) != 1 {
		t.Fatalf("got %d notes, want 1 (bad timing dropped)", len(notes))
	}
	if notes[0].Pitch != 127 || notes[0].Velocity != 0 {
		t.Errorf("note = %+v, want pitch/velocity clamped", notes[0])
	}
}

func TestStoreLoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "alice.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(dir)
	if _, err := store.Load("alice"); err == nil {
		t.Error("corrupt record loaded without error")
	}
}

func TestStoreDeleteAndList(t *testing.T) {
	store := NewStore(t.TempDir())
	store.Save(NewComposition("bob"))
	store.Save(NewComposition("alice"))

	owners, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(owners) != 2 || owners[0] != "alice" || owners[1] != "bob" {
		t.Errorf("List = %v, want sorted [alice bob]", owners)
	}

	if err := store.Delete("alice"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := store.Delete("alice"); err != nil {
		t.Errorf("second Delete: %v, want nil", err)
	}
	owners, _ = store.List()
	if len(owners) != 1 || owners[0] != "bob" {
		t.Errorf("List after delete = %v", owners)
	}
}

func TestStoreSanitizesOwnerNames(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	if err := store.Save(NewComposition("weird/owner name")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "weird-owner-name.json")); err != nil {
		t.Errorf("sanitized record missing: %v", err)
	}
	if _, err := store.Load("weird/owner name"); err != nil {
		t.Errorf("Load via original owner: %v", err)
	}
}

func TestStoreListEmptyDir(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "does-not-exist"))
	owners, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(owners) != 0 {
		t.Errorf("List = %v, want empty", owners)
	}
}
