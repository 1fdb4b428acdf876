package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func PlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play the composition, blocking until done (ctrl-c stops)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := Setup()
			if err != nil {
				return err
			}
			defer app.Close()

			s := app.Manager.Summary(app.Owner)
			if s.Notes == 0 {
				fmt.Println("nothing to play")
				return nil
			}

			interrupt := make(chan os.Signal, 1)
			signal.Notify(interrupt, os.Interrupt)
			defer signal.Stop(interrupt)

			done := app.Manager.Play(app.Owner)
			select {
			case <-done:
			case <-interrupt:
				app.Manager.Stop(app.Owner)
				<-done
			}
			return nil
		},
	}
}
