package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func TempoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tempo <bpm>",
		Short: "Set the composition tempo (20-300 bpm)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bpm, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("bpm must be an integer: %q", args[0])
			}

			app, err := Setup()
			if err != nil {
				return err
			}
			defer app.Close()

			return app.Manager.SetTempo(app.Owner, bpm)
		},
	}
}
