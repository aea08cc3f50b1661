package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/lifelog/internal/charts"
	"github.com/faizmokh/lifelog/internal/journal"
)

// readInput returns the contents of the file named by args[0], or stdin when no
// file (or "-") is given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

func formatEntry(entry journal.Entry) string {
	var b strings.Builder
	b.WriteString(charts.DateLabel(entry.Date))
	b.WriteByte('\n')

	fmt.Fprintf(&b, "  substances:  %s\n", orDash(entry.Substances))
	fmt.Fprintf(&b, "  medication:  %s\n", formatMedication(entry.Medication))
	fmt.Fprintf(&b, "  routines:    %s\n", formatRoutines(entry.Routines))
	fmt.Fprintf(&b, "  sleep:       fell asleep %s, woke up %s\n",
		orDash(entry.Sleep.Morning), orDash(entry.Sleep.Night))
	if entry.Description != nil {
		fmt.Fprintf(&b, "  description: %s\n", *entry.Description)
	}
	if entry.Feelings != nil {
		fmt.Fprintf(&b, "  feelings:    %s\n", *entry.Feelings)
	}
	return b.String()
}

func formatMedication(med journal.Medication) string {
	if med.Type == journal.MedicationNone {
		return "-"
	}
	if med.Amount != nil {
		return fmt.Sprintf("%d %s", *med.Amount, med.Type)
	}
	return string(med.Type)
}

func formatRoutines(r journal.Routines) string {
	if !r.Complete() {
		return "-"
	}
	return fmt.Sprintf("morning %s, work %s, night %s", yesNo(*r.Morning), yesNo(*r.Work), yesNo(*r.Night))
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func plural(count int) string {
	if count == 1 {
		return "y"
	}
	return "ies"
}
