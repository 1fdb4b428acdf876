package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/linkerage/midiseq/midi"
	"github.com/linkerage/midiseq/sequencer"
)

// feedLines is how many recent events the monitor keeps on screen.
const feedLines = 14

// Model is a live monitor for one owner's composition: a summary header
// plus a scrolling feed of playback events.
type Model struct {
	Manager *sequencer.Manager
	Owner   string

	events   <-chan midi.Event
	feed     []string
	quitting bool
}

type EventMsg midi.Event

func NewModel(manager *sequencer.Manager, owner string, events <-chan midi.Event) Model {
	return Model{
		Manager: manager,
		Owner:   owner,
		events:  events,
	}
}

// ListenForEvents waits for the next playback event from the sink.
func ListenForEvents(events <-chan midi.Event) tea.Cmd {
	return func() tea.Msg {
		return EventMsg(<-events)
	}
}

func (m Model) Init() tea.Cmd {
	return ListenForEvents(m.events)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			m.Manager.Stop(m.Owner)
			return m, tea.Quit

		case "p", " ":
			if m.Manager.Playing(m.Owner) {
				m.Manager.Stop(m.Owner)
			} else {
				m.feed = nil
				m.Manager.Play(m.Owner)
			}

		case "s":
			m.Manager.Stop(m.Owner)

		case "+", "=":
			s := m.Manager.Summary(m.Owner)
			m.Manager.SetTempo(m.Owner, s.Tempo+5)

		case "-", "_":
			s := m.Manager.Summary(m.Owner)
			m.Manager.SetTempo(m.Owner, s.Tempo-5)

		case "c":
			m.Manager.Stop(m.Owner)
			m.Manager.Clear(m.Owner)
			m.feed = nil
		}

	case EventMsg:
		m.feed = append(m.feed, midi.Event(msg).String())
		if len(m.feed) > feedLines {
			m.feed = m.feed[len(m.feed)-feedLines:]
		}
		return m, ListenForEvents(m.events)
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	feedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	s := m.Manager.Summary(m.Owner)

	playState := "STOP"
	if m.Manager.Playing(m.Owner) {
		playState = "PLAY"
	}

	header := headerStyle.Render(fmt.Sprintf("midiseq  %s  %3dbpm  %s  %s",
		playState, s.Tempo, s.Signature, m.Owner))
	summary := dimStyle.Render(fmt.Sprintf("%d tracks  %d notes  %.1f beats",
		s.Tracks, s.Notes, s.Duration))

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n")
	out.WriteString(summary)
	out.WriteString("\n\n")

	if len(m.feed) == 0 {
		out.WriteString(dimStyle.Render("  (no events yet - press p to play)"))
		out.WriteString("\n")
	}
	for _, line := range m.feed {
		out.WriteString(feedStyle.Render("  " + line))
		out.WriteString("\n")
	}

	out.WriteString("\n")
	out.WriteString(dimStyle.Render("p:play/stop  +/-:tempo  c:clear  q:quit"))
	return out.String()
}
