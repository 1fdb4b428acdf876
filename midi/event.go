package midi

import (
	"fmt"
	"time"
)

// MIDI message types
const (
	NoteOn  uint8 = 0x90
	NoteOff uint8 = 0x80
)

// Event is a single timed playback event produced by the scheduler.
// At is the offset from the start of playback.
type Event struct {
	Type     uint8 // NoteOn or NoteOff
	Track    int   // track index within the composition
	Note     uint8
	Velocity uint8
	At       time.Duration
}

// String renders the event the way it appears in the playback feed.
func (e Event) String() string {
	kind := "on "
	if e.Type == NoteOff {
		kind = "off"
	}
	return fmt.Sprintf("%7.3fs  note %s %-4s (%3d) vel %3d  track %d",
		e.At.Seconds(), kind, NoteName(e.Note), e.Note, e.Velocity, e.Track)
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName converts a MIDI note number to its name, e.g. 60 -> "C4".
func NoteName(note uint8) string {
	octave := int(note)/12 - 1
	return fmt.Sprintf("%s%d", noteNames[note%12], octave)
}
