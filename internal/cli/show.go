package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/lifelog/internal/journal"
)

func newShowCommand(ctx context.Context, s *session) *cobra.Command {
	var (
		outputJSON bool
		raw        bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the parsed journal, newest block first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if raw {
				fmt.Fprint(cmd.OutOrStdout(), s.journal.Raw(ctx))
				return nil
			}

			entries := s.journal.ReadParsed(ctx)
			if outputJSON {
				return printEntriesJSON(cmd, entries)
			}
			return printEntries(cmd, entries)
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "Emit entries as JSON")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the stored text verbatim")
	cmd.MarkFlagsMutuallyExclusive("json", "raw")

	return cmd
}

func printEntries(cmd *cobra.Command, entries []journal.Entry) error {
	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "(no entries)")
		return nil
	}
	for i, entry := range entries {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprint(out, formatEntry(entry))
	}
	return nil
}

func printEntriesJSON(cmd *cobra.Command, entries []journal.Entry) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
