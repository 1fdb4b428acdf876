package sequencer

import (
	"fmt"
	"time"

	"github.com/samber/lo"
)

// Tempo limits in BPM. Out-of-range tempo requests are declined rather
// than clamped.
const (
	MinTempo     = 20
	MaxTempo     = 300
	DefaultTempo = 120
)

// TimeSignature is a numerator/denominator pair, e.g. 4/4.
type TimeSignature struct {
	Numerator   int
	Denominator int
}

func DefaultSignature() TimeSignature {
	return TimeSignature{Numerator: 4, Denominator: 4}
}

func (ts TimeSignature) String() string {
	return fmt.Sprintf("%d/%d", ts.Numerator, ts.Denominator)
}

// Composition is the full multi-track document for one owner. It is only
// mutated through the Manager, which serializes access per owner.
type Composition struct {
	Owner     string
	Name      string
	Tempo     int
	Signature TimeSignature
	Tracks    []*Track
}

// NewComposition returns the default document for an owner: tempo 120,
// 4/4, one empty default track.
func NewComposition(owner string) *Composition {
	return &Composition{
		Owner:     owner,
		Name:      fmt.Sprintf("%s's composition", owner),
		Tempo:     DefaultTempo,
		Signature: DefaultSignature(),
		Tracks:    []*Track{NewTrack("Track 1")},
	}
}

// AddTrack appends a track and returns its index. An empty name gets the
// default "Track N".
func (c *Composition) AddTrack(name string) int {
	if name == "" {
		name = fmt.Sprintf("Track %d", len(c.Tracks)+1)
	}
	c.Tracks = append(c.Tracks, NewTrack(name))
	return len(c.Tracks) - 1
}

// SetInstrument sets the program number of a track, clamped into [0,127].
func (c *Composition) SetInstrument(track, value int) error {
	if track < 0 || track >= len(c.Tracks) {
		return ErrInvalidTrack
	}
	c.Tracks[track].SetInstrument(value)
	return nil
}

// SetTempo replaces the tempo, declining values outside [20,300].
func (c *Composition) SetTempo(bpm int) error {
	if bpm < MinTempo || bpm > MaxTempo {
		return ErrInvalidTempo
	}
	c.Tempo = bpm
	return nil
}

// AddNote validates and appends a note to a track.
func (c *Composition) AddNote(track, pitch, velocity int, start, duration float64) error {
	if track < 0 || track >= len(c.Tracks) {
		return ErrInvalidTrack
	}
	note, err := NewNote(pitch, velocity, start, duration, track)
	if err != nil {
		return err
	}
	t := c.Tracks[track]
	t.Notes = append(t.Notes, note)
	return nil
}

// RemoveNote drops the i-th note of a track (insertion order).
func (c *Composition) RemoveNote(track, note int) error {
	if track < 0 || track >= len(c.Tracks) {
		return ErrInvalidTrack
	}
	t := c.Tracks[track]
	if note < 0 || note >= len(t.Notes) {
		return ErrInvalidNote
	}
	t.Notes = append(t.Notes[:note], t.Notes[note+1:]...)
	return nil
}

// Clear resets the document in place: tempo 120, 4/4, no tracks.
func (c *Composition) Clear() {
	c.Tempo = DefaultTempo
	c.Signature = DefaultSignature()
	c.Tracks = nil
}

// NoteCount returns the total number of notes across all tracks.
func (c *Composition) NoteCount() int {
	return lo.SumBy(c.Tracks, func(t *Track) int { return len(t.Notes) })
}

// TotalDuration returns the end of the last note in beats.
func (c *Composition) TotalDuration() float64 {
	var max float64
	for _, t := range c.Tracks {
		for _, n := range t.Notes {
			if end := n.End(); end > max {
				max = end
			}
		}
	}
	return max
}

// BeatDuration converts the tempo to the real-time length of one beat.
func (c *Composition) BeatDuration() time.Duration {
	return time.Duration(float64(time.Minute) / float64(c.Tempo))
}

// Clone returns a deep copy. The player snapshots the composition this
// way so edits during playback cannot affect an in-flight run.
func (c *Composition) Clone() *Composition {
	tracks := lo.Map(c.Tracks, func(t *Track, _ int) *Track { return t.Clone() })
	return &Composition{
		Owner:     c.Owner,
		Name:      c.Name,
		Tempo:     c.Tempo,
		Signature: c.Signature,
		Tracks:    tracks,
	}
}

// Summary is a read-only description of a composition.
type Summary struct {
	Name      string
	Tempo     int
	Signature TimeSignature
	Tracks    int
	Notes     int
	Duration  float64 // beats
}

// Summarize reports tempo, counts and total duration. Pure; no side
// effects.
func (c *Composition) Summarize() Summary {
	return Summary{
		Name:      c.Name,
		Tempo:     c.Tempo,
		Signature: c.Signature,
		Tracks:    len(c.Tracks),
		Notes:     c.NoteCount(),
		Duration:  c.TotalDuration(),
	}
}

// Describe formats the composition as a single relay-friendly line.
func (c *Composition) Describe() string {
	s := c.Summarize()
	out := fmt.Sprintf("%s | tempo: %d bpm | %s | %.1f beats | tracks: %d",
		s.Name, s.Tempo, s.Signature, s.Duration, s.Tracks)
	for i, t := range c.Tracks {
		out += fmt.Sprintf(" | track %d: %s (%d notes, instrument %d)",
			i, t.Name, len(t.Notes), t.Instrument)
	}
	return out
}
