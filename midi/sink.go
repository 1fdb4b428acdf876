package midi

import "github.com/linkerage/midiseq/logger"

// Sink receives playback events as they fire. Emit is called from the
// scheduler's goroutine; a returned error skips the event but never
// aborts the rest of the timeline.
type Sink interface {
	Emit(Event) error
}

// FuncSink adapts a function to the Sink interface.
type FuncSink func(Event) error

func (f FuncSink) Emit(e Event) error { return f(e) }

// LogSink writes every event to the log. It is the default sink when no
// MIDI output port is configured.
type LogSink struct {
	log *logger.Logger
}

func NewLogSink(log *logger.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Emit(e Event) error {
	if e.Type == NoteOn {
		s.log.Info("note on", "note", NoteName(e.Note), "midi", e.Note, "velocity", e.Velocity, "track", e.Track)
	} else {
		s.log.Info("note off", "note", NoteName(e.Note), "midi", e.Note, "track", e.Track)
	}
	return nil
}
