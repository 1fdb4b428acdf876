package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/linkerage/midiseq/sequencer"
)

func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the composition summary and tracks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := Setup()
			if err != nil {
				return err
			}
			defer app.Close()

			comp := app.Manager.GetOrCreate(app.Owner)
			fmt.Println(renderComposition(comp))
			return nil
		},
	}
}

func renderComposition(c *sequencer.Composition) string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	s := c.Summarize()

	var out strings.Builder
	out.WriteString(titleStyle.Render(s.Name))
	out.WriteString("\n")
	out.WriteString(dimStyle.Render(fmt.Sprintf("tempo %d bpm  %s  %.1f beats  %d notes",
		s.Tempo, s.Signature, s.Duration, s.Notes)))
	out.WriteString("\n")

	lines := lo.Map(c.Tracks, func(t *sequencer.Track, i int) string {
		return fmt.Sprintf("  track %d: %-16s instrument %3d  %d notes",
			i, t.Name, t.Instrument, len(t.Notes))
	})
	out.WriteString(strings.Join(lines, "\n"))
	return out.String()
}

func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List owners with saved compositions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := Setup()
			if err != nil {
				return err
			}
			defer app.Close()

			owners, err := app.Manager.List()
			if err != nil {
				return err
			}
			if len(owners) == 0 {
				fmt.Println("(no saved compositions)")
				return nil
			}
			for _, owner := range owners {
				fmt.Println(owner)
			}
			return nil
		},
	}
}
