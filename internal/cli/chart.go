package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/lifelog/internal/charts"
)

func newChartCommand(ctx context.Context, s *session) *cobra.Command {
	var windowFlag string

	cmd := &cobra.Command{
		Use:       "chart [sleep|substances|routines|medication|all]",
		Short:     "Draw journal charts in the terminal.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"sleep", "substances", "routines", "medication", "all"},
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := charts.ParseWindow(windowFlag)
			if err != nil {
				return err
			}

			entries := s.journal.ReadParsed(ctx)
			now := s.clock()
			out := cmd.OutOrStdout()

			if len(args) == 0 || args[0] == "all" {
				fmt.Fprintln(out, charts.Dashboard(entries, window, now))
				return nil
			}

			kind, err := charts.ParseKind(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(out, charts.Render(kind, entries, window, now))
			return nil
		},
	}

	cmd.Flags().StringVar(&windowFlag, "window", charts.DefaultWindow().Key, "Range to chart: 7d, 14d, 28d or all")

	return cmd
}
