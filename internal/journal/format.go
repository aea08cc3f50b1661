package journal

import (
	"strconv"
	"strings"
)

// blankField stands in for an absent field in the middle of a block. It trims to
// empty but does not end the block the way a truly empty line would.
const blankField = " "

// Format renders an entry in the block grammar understood by Parse.
func Format(entry Entry) string {
	lines := []string{
		formatDate(entry),
		deref(entry.Substances),
		formatMedication(entry.Medication),
		formatRoutines(entry.Routines),
		formatSleep(entry.Sleep),
		deref(entry.Description),
		deref(entry.Feelings),
	}

	// Drop absent trailing fields; Parse treats missing lines as empty.
	end := len(lines)
	for end > 1 && lines[end-1] == "" {
		end--
	}
	lines = lines[:end]
	for i, line := range lines {
		if line == "" {
			lines[i] = blankField
		}
	}
	return strings.Join(lines, "\n")
}

// FormatAll renders entries as a journal text, oldest block first, so that
// Parse(FormatAll(entries)) returns entries in their original order.
func FormatAll(entries []Entry) string {
	blocks := make([]string, len(entries))
	for i, entry := range entries {
		blocks[len(entries)-1-i] = Format(entry)
	}
	return strings.Join(blocks, "\n\n")
}

func formatDate(entry Entry) string {
	if !entry.HasDate() {
		return "??.??.??,"
	}
	return entry.Date.Format("02.01.06") + ","
}

func formatMedication(med Medication) string {
	switch med.Type {
	case MedicationNo:
		return "no"
	case MedicationMTP, MedicationMWO:
		kind := strings.ToLower(string(med.Type))
		if med.Amount == nil {
			return kind
		}
		return strconv.Itoa(*med.Amount) + " " + kind
	default:
		return ""
	}
}

func formatRoutines(r Routines) string {
	if !r.Complete() {
		return ""
	}
	return yesNo(*r.Morning) + ", " + yesNo(*r.Work) + ", " + yesNo(*r.Night)
}

func formatSleep(s SleepSchedule) string {
	switch {
	case s.Morning == nil && s.Night == nil:
		return ""
	case s.Night == nil:
		return *s.Morning
	default:
		return deref(s.Morning) + " and " + *s.Night
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
