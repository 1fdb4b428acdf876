package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func SaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Persist the composition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := Setup()
			if err != nil {
				return err
			}
			defer app.Close()

			return app.Manager.Save(app.Owner)
		},
	}
}

func ClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Reset the composition to its default empty state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := Setup()
			if err != nil {
				return err
			}
			defer app.Close()

			return app.Manager.Clear(app.Owner)
		},
	}
}

func DeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete the saved composition record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := Setup()
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Manager.Delete(app.Owner); err != nil {
				return err
			}
			fmt.Printf("record for %s deleted\n", app.Owner)
			return nil
		},
	}
}

func InfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the one-line composition description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := Setup()
			if err != nil {
				return err
			}
			defer app.Close()

			fmt.Println(app.Manager.Describe(app.Owner))
			return nil
		},
	}
}
