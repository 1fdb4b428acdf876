package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/linkerage/midiseq/cmd"
)

func main() {
	root := &cobra.Command{
		Use:           "midiseq",
		Short:         "Multi-user MIDI composition editor and player",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVarP(&cmd.OwnerFlag, "owner", "o", "",
		"owner identity (defaults to config, then $USER)")

	root.AddCommand(
		cmd.AddTrackCmd(),
		cmd.AddNoteCmd(),
		cmd.RemoveNoteCmd(),
		cmd.TempoCmd(),
		cmd.InstrumentCmd(),
		cmd.ShowCmd(),
		cmd.InfoCmd(),
		cmd.PlayCmd(),
		cmd.SaveCmd(),
		cmd.ClearCmd(),
		cmd.DeleteCmd(),
		cmd.ListCmd(),
		cmd.WatchCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
