package midi

import (
	"fmt"
	"strings"
	"sync"

	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver
)

// PortSink sends events to a named MIDI output port. The port is opened
// lazily on the first emit so constructing a sink never touches the
// MIDI subsystem.
type PortSink struct {
	portName string

	mu   sync.Mutex
	send func(gomidi.Message) error
}

func NewPortSink(portName string) *PortSink {
	return &PortSink{portName: portName}
}

// Emit translates the event into a MIDI message on channel track%16.
func (s *PortSink) Emit(e Event) error {
	send, err := s.sender()
	if err != nil {
		return err
	}
	ch := uint8(e.Track % 16)
	if e.Type == NoteOn {
		return send(gomidi.NoteOn(ch, e.Note, e.Velocity))
	}
	return send(gomidi.NoteOff(ch, e.Note))
}

// sender opens the output port on first use.
func (s *PortSink) sender() (func(gomidi.Message) error, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.send != nil {
		return s.send, nil
	}

	// rtmidi port names carry device indices, so match by substring.
	for _, port := range gomidi.GetOutPorts() {
		if strings.Contains(port.String(), s.portName) {
			send, err := gomidi.SendTo(port)
			if err != nil {
				return nil, fmt.Errorf("open midi port %q: %w", s.portName, err)
			}
			s.send = send
			return send, nil
		}
	}
	return nil, fmt.Errorf("midi port %q not found", s.portName)
}

// Close releases the MIDI driver resources.
func (s *PortSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.send != nil {
		gomidi.CloseDriver()
		s.send = nil
	}
}
