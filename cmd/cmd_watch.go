package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/linkerage/midiseq/midi"
	"github.com/linkerage/midiseq/tui"
)

func WatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Open the live playback monitor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			events := make(chan midi.Event, 64)
			app, err := SetupWithSink(func(e midi.Event) {
				select {
				case events <- e:
				default:
					// drop rather than stall the scheduler
				}
			})
			if err != nil {
				return err
			}
			defer app.Close()

			m := tui.NewModel(app.Manager, app.Owner, events)
			p := tea.NewProgram(m, tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}
