package sequencer

import "errors"

var (
	ErrInvalidTrack    = errors.New("track index out of range")
	ErrInvalidTempo    = errors.New("tempo must be between 20 and 300 bpm")
	ErrInvalidDuration = errors.New("note duration must be positive")
	ErrInvalidStart    = errors.New("note start must not be negative")
	ErrInvalidNote     = errors.New("note index out of range")
)
