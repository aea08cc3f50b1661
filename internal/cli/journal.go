package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newUpdateCommand(ctx context.Context, s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [file|-]",
		Short: "Replace the stored journal with the given text.",
		Long:  "update reads journal text from a file or stdin and replaces whatever was stored before.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			s.journal.Write(ctx, text)
			count := len(s.journal.ReadParsed(ctx))
			fmt.Fprintf(cmd.OutOrStdout(), "Journal updated: %d entr%s\n", count, plural(count))
			return nil
		},
	}

	return cmd
}

func newAppendCommand(ctx context.Context, s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "append [file|-]",
		Short: "Add a day block below the stored journal.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			s.journal.Append(ctx, text)
			count := len(s.journal.ReadParsed(ctx))
			fmt.Fprintf(cmd.OutOrStdout(), "Journal now holds %d entr%s\n", count, plural(count))
			return nil
		},
	}

	return cmd
}

func newClearCommand(ctx context.Context, s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the stored journal.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s.journal.Clear(ctx)
			fmt.Fprintln(cmd.OutOrStdout(), "Journal deleted")
			return nil
		},
	}

	return cmd
}
