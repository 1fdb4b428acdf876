package sequencer

// Note is a single scheduled pitch within a track. Start and Duration are
// in beats; real time depends on the composition tempo at play time.
type Note struct {
	Pitch    uint8
	Velocity uint8
	Start    float64
	Duration float64
	Track    int
}

// NewNote validates timing and clamps pitch and velocity into the MIDI
// range. Out-of-range pitch or velocity is never an error.
func NewNote(pitch, velocity int, start, duration float64, track int) (Note, error) {
	if start < 0 {
		return Note{}, ErrInvalidStart
	}
	if duration <= 0 {
		return Note{}, ErrInvalidDuration
	}
	return Note{
		Pitch:    clampMIDI(pitch),
		Velocity: clampMIDI(velocity),
		Start:    start,
		Duration: duration,
		Track:    track,
	}, nil
}

// End returns the beat at which the note stops sounding.
func (n Note) End() float64 {
	return n.Start + n.Duration
}

func clampMIDI(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 127 {
		return 127
	}
	return uint8(v)
}
