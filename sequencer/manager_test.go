package sequencer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/linkerage/midiseq/logger"
)

func newTestManager(t *testing.T) (*Manager, string, *collectSink) {
	t.Helper()
	dir := t.TempDir()
	sink := &collectSink{}
	m := NewManager(NewStore(dir), sink, logger.Nop())
	return m, dir, sink
}

func TestGetOrCreateDefaults(t *testing.T) {
	m, _, _ := newTestManager(t)

	c := m.GetOrCreate("alice")
	if c.Owner != "alice" || c.Tempo != 120 || len(c.Tracks) != 1 {
		t.Errorf("default composition = %+v", c)
	}

	s := m.Summary("alice")
	if s.Notes != 0 || s.Tracks != 1 || s.Tempo != 120 {
		t.Errorf("summary = %+v", s)
	}
}

func TestAddNoteAutosavesAndReloads(t *testing.T) {
	m, dir, _ := newTestManager(t)

	if err := m.AddNote("alice", 0, 200, 300, 0, 1); err != nil {
		t.Fatalf("AddNote: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "alice.json")); err != nil {
		t.Fatalf("autosave did not write a record: %v", err)
	}

	// A fresh manager over the same directory must see identical data.
	m2 := NewManager(NewStore(dir), &collectSink{}, logger.Nop())
	c := m2.GetOrCreate("alice")
	if c.NoteCount() != 1 {
		t.Fatalf("reloaded NoteCount = %d, want 1", c.NoteCount())
	}
	n := c.Tracks[0].Notes[0]
	if n.Pitch != 127 || n.Velocity != 127 || n.Start != 0 || n.Duration != 1 {
		t.Errorf("reloaded note = %+v, want clamped (127,127,0,1)", n)
	}
}

func TestDeclinedEditDoesNotSave(t *testing.T) {
	m, dir, _ := newTestManager(t)

	if err := m.SetTempo("alice", 10); err != ErrInvalidTempo {
		t.Fatalf("SetTempo(10): got %v, want ErrInvalidTempo", err)
	}
	if err := m.SetTempo("alice", 301); err != ErrInvalidTempo {
		t.Fatalf("SetTempo(301): got %v, want ErrInvalidTempo", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "alice.json")); !os.IsNotExist(err) {
		t.Error("declined edit still wrote a record")
	}
}

func TestClearPersistsReset(t *testing.T) {
	m, dir, _ := newTestManager(t)

	m.AddTrack("alice", "lead")
	m.AddNote("alice", 0, 60, 100, 0, 1)
	if err := m.Clear("alice"); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	s := m.Summary("alice")
	if s.Notes != 0 || s.Tracks != 0 || s.Tempo != 120 {
		t.Errorf("summary after clear = %+v", s)
	}

	m2 := NewManager(NewStore(dir), &collectSink{}, logger.Nop())
	if s := m2.Summary("alice"); s.Notes != 0 || s.Tracks != 0 {
		t.Errorf("persisted reset = %+v", s)
	}
}

func TestCorruptRecordDegradesToDefault(t *testing.T) {
	m, dir, _ := newTestManager(t)

	if err := os.WriteFile(filepath.Join(dir, "alice.json"), []byte("{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	c := m.GetOrCreate("alice")
	if c.Tempo != 120 || len(c.Tracks) != 1 || c.NoteCount() != 0 {
		t.Errorf("corrupt record did not degrade to default: %+v", c)
	}
}

func TestOwnersAreIndependent(t *testing.T) {
	m, _, _ := newTestManager(t)

	m.AddNote("alice", 0, 60, 100, 0, 1)
	m.SetTempo("bob", 90)

	if s := m.Summary("alice"); s.Tempo != 120 || s.Notes != 1 {
		t.Errorf("alice = %+v", s)
	}
	if s := m.Summary("bob"); s.Tempo != 90 || s.Notes != 0 {
		t.Errorf("bob = %+v", s)
	}

	owners, err := m.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(owners) != 2 {
		t.Errorf("List = %v, want two owners", owners)
	}
}

func TestDeleteRemovesRecordAndEntry(t *testing.T) {
	m, dir, _ := newTestManager(t)

	m.AddNote("alice", 0, 60, 100, 0, 1)
	if err := m.Delete("alice"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "alice.json")); !os.IsNotExist(err) {
		t.Error("record still on disk after Delete")
	}

	// Next access starts from scratch.
	if s := m.Summary("alice"); s.Notes != 0 || s.Tracks != 1 {
		t.Errorf("summary after delete = %+v", s)
	}
}

func TestManagerPlayAndStop(t *testing.T) {
	m, _, sink := newTestManager(t)

	m.SetTempo("alice", 300)
	m.AddNote("alice", 0, 60, 100, 0, 0.5)

	done := m.Play("alice")
	if !m.Playing("alice") {
		t.Error("Playing = false right after Play")
	}
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("playback did not finish")
	}
	if len(sink.all()) != 2 {
		t.Errorf("emitted %d events, want 2", len(sink.all()))
	}
	if m.Playing("alice") {
		t.Error("Playing = true after the run exited")
	}

	// Stop with no active run is a no-op.
	m.Stop("alice")
	m.Stop("nobody")
}

func TestManagerPlayIsolatedPerOwner(t *testing.T) {
	m, _, _ := newTestManager(t)

	m.AddNote("alice", 0, 60, 100, 0, 60)
	done := m.Play("alice")

	m.Stop("bob") // must not touch alice's run
	if !m.Playing("alice") {
		t.Fatal("stop on another owner cancelled alice's playback")
	}

	m.Stop("alice")
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("playback did not stop")
	}
}
