package sequencer

import "testing"

func TestNewNoteClampsPitchAndVelocity(t *testing.T) {
	n, err := NewNote(200, 300, 0, 1, 0)
	if err != nil {
		t.Fatalf("NewNote: %v", err)
	}
	if n.Pitch != 127 || n.Velocity != 127 {
		t.Errorf("got pitch %d velocity %d, want both clamped to 127", n.Pitch, n.Velocity)
	}

	n, err = NewNote(-5, -1, 0, 1, 0)
	if err != nil {
		t.Fatalf("NewNote: %v", err)
	}
	if n.Pitch != 0 || n.Velocity != 0 {
		t.Errorf("got pitch %d velocity %d, want both clamped to 0", n.Pitch, n.Velocity)
	}
}

func TestNewNoteRejectsBadTiming(t *testing.T) {
	if _, err := NewNote(60, 100, -0.5, 1, 0); err != ErrInvalidStart {
		t.Errorf("negative start: got %v, want ErrInvalidStart", err)
	}
	if _, err := NewNote(60, 100, 0, 0, 0); err != ErrInvalidDuration {
		t.Errorf("zero duration: got %v, want ErrInvalidDuration", err)
	}
	if _, err := NewNote(60, 100, 0, -1, 0); err != ErrInvalidDuration {
		t.Errorf("negative duration: got %v, want ErrInvalidDuration", err)
	}
}

func TestNoteEnd(t *testing.T) {
	n, err := NewNote(60, 100, 1.5, 2, 0)
	if err != nil {
		t.Fatalf("NewNote: %v", err)
	}
	if n.End() != 3.5 {
		t.Errorf("End() = %v, want 3.5", n.End())
	}
}
