package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func AddNoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-note <track> <pitch> <velocity> <start> <duration>",
		Short: "Add a note to a track (start and duration in beats)",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			ints := make([]int, 3)
			for i := 0; i < 3; i++ {
				v, err := strconv.Atoi(args[i])
				if err != nil {
					return fmt.Errorf("expected an integer, got %q", args[i])
				}
				ints[i] = v
			}
			start, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return fmt.Errorf("start must be a number, got %q", args[3])
			}
			duration, err := strconv.ParseFloat(args[4], 64)
			if err != nil {
				return fmt.Errorf("duration must be a number, got %q", args[4])
			}

			app, err := Setup()
			if err != nil {
				return err
			}
			defer app.Close()

			return app.Manager.AddNote(app.Owner, ints[0], ints[1], ints[2], start, duration)
		},
	}
}

func RemoveNoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-note <track> <index>",
		Short: "Remove the i-th note of a track",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			track, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("track must be an integer: %q", args[0])
			}
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("index must be an integer: %q", args[1])
			}

			app, err := Setup()
			if err != nil {
				return err
			}
			defer app.Close()

			return app.Manager.RemoveNote(app.Owner, track, index)
		},
	}
}
