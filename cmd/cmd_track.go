package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func AddTrackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-track [name]",
		Short: "Append a track to the composition",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := Setup()
			if err != nil {
				return err
			}
			defer app.Close()

			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			idx, err := app.Manager.AddTrack(app.Owner, name)
			if err != nil {
				return err
			}
			fmt.Printf("track %d added\n", idx)
			return nil
		},
	}
}

func InstrumentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "instrument <track> <program>",
		Short: "Set a track's General MIDI program number",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			track, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("track must be an integer: %q", args[0])
			}
			program, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("program must be an integer: %q", args[1])
			}

			app, err := Setup()
			if err != nil {
				return err
			}
			defer app.Close()

			return app.Manager.SetInstrument(app.Owner, track, program)
		},
	}
}
