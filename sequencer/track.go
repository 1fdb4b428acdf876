package sequencer

// Track is a named, instrument-tagged container of notes. Notes keep
// their insertion order; overlapping and simultaneous notes are allowed.
type Track struct {
	Name       string
	Instrument uint8 // General MIDI program number
	Notes      []Note
}

func NewTrack(name string) *Track {
	return &Track{Name: name}
}

// SetInstrument clamps the program number into [0,127].
func (t *Track) SetInstrument(value int) {
	t.Instrument = clampMIDI(value)
}

// Clone returns a deep copy, used for playback snapshots.
func (t *Track) Clone() *Track {
	notes := make([]Note, len(t.Notes))
	copy(notes, t.Notes)
	return &Track{
		Name:       t.Name,
		Instrument: t.Instrument,
		Notes:      notes,
	}
}
