package sequencer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Store persists one JSON record per owner under a single directory.
// The wire schema is kept separate from the domain types so loading can
// repair individual fields instead of rejecting the whole record.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Wire schema. Field names match the records written by earlier versions
// of this tool, so existing files keep loading.
type compositionRecord struct {
	Name          string        `json:"name"`
	Tempo         int           `json:"tempo"`
	TimeSignature []int         `json:"time_signature"`
	Tracks        []trackRecord `json:"tracks"`
}

type trackRecord struct {
	Name       string       `json:"name"`
	Instrument int          `json:"instrument"`
	Notes      []noteRecord `json:"notes"`
}

type noteRecord struct {
	Note     int     `json:"note"`
	Velocity int     `json:"velocity"`
	Start    float64 `json:"start_time"`
	Duration float64 `json:"duration"`
	Track    int     `json:"track"`
}

func (s *Store) path(owner string) string {
	return filepath.Join(s.dir, sanitizeOwner(owner)+".json")
}

// Save serializes the composition to its owner's record. A failed save
// leaves any previous record and the in-memory state untouched.
func (s *Store) Save(c *Composition) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	rec := compositionRecord{
		Name:          c.Name,
		Tempo:         c.Tempo,
		TimeSignature: []int{c.Signature.Numerator, c.Signature.Denominator},
		Tracks:        []trackRecord{},
	}
	for i, t := range c.Tracks {
		tr := trackRecord{
			Name:       t.Name,
			Instrument: int(t.Instrument),
			Notes:      []noteRecord{},
		}
		for _, n := range t.Notes {
			tr.Notes = append(tr.Notes, noteRecord{
				Note:     int(n.Pitch),
				Velocity: int(n.Velocity),
				Start:    n.Start,
				Duration: n.Duration,
				Track:    i,
			})
		}
		rec.Tracks = append(rec.Tracks, tr)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path(c.Owner), data, 0644); err != nil {
		return fmt.Errorf("write record for %s: %w", c.Owner, err)
	}
	return nil
}

// Load reads an owner's record. A missing file surfaces as an
// os.IsNotExist error; malformed JSON as a decode error. Individual
// out-of-range fields are repaired, not rejected: tempo is clamped into
// range, pitch and velocity into [0,127], and notes with invalid timing
// are dropped.
func (s *Store) Load(owner string) (*Composition, error) {
	data, err := os.ReadFile(s.path(owner))
	if err != nil {
		return nil, err
	}

	var rec compositionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode record for %s: %w", owner, err)
	}

	c := &Composition{
		Owner:     owner,
		Name:      rec.Name,
		Tempo:     clampTempo(rec.Tempo),
		Signature: signatureFromRecord(rec.TimeSignature),
	}
	if c.Name == "" {
		c.Name = fmt.Sprintf("%s's composition", owner)
	}
	for i, tr := range rec.Tracks {
		t := NewTrack(tr.Name)
		if t.Name == "" {
			t.Name = fmt.Sprintf("Track %d", i+1)
		}
		t.SetInstrument(tr.Instrument)
		for _, nr := range tr.Notes {
			note, err := NewNote(nr.Note, nr.Velocity, nr.Start, nr.Duration, i)
			if err != nil {
				continue // drop notes with unusable timing
			}
			t.Notes = append(t.Notes, note)
		}
		c.Tracks = append(c.Tracks, t)
	}
	return c, nil
}

// Delete removes an owner's record. Deleting a record that doesn't exist
// is not an error.
func (s *Store) Delete(owner string) error {
	err := os.Remove(s.path(owner))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// List returns the owners with persisted records, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	var owners []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		owners = append(owners, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(owners)
	return owners, nil
}

func clampTempo(bpm int) int {
	if bpm == 0 {
		return DefaultTempo
	}
	if bpm < MinTempo {
		return MinTempo
	}
	if bpm > MaxTempo {
		return MaxTempo
	}
	return bpm
}

func signatureFromRecord(sig []int) TimeSignature {
	if len(sig) != 2 || sig[0] <= 0 || sig[1] <= 0 {
		return DefaultSignature()
	}
	return TimeSignature{Numerator: sig[0], Denominator: sig[1]}
}

// sanitizeOwner removes characters that are problematic in filenames.
func sanitizeOwner(owner string) string {
	replacer := strings.NewReplacer(
		" ", "-", "/", "-", "\\", "-", ":", "-",
		"*", "", "?", "", "\"", "", "<", "", ">", "", "|", "",
	)
	return replacer.Replace(owner)
}
