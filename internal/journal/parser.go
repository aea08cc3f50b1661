package journal

import (
	"regexp"
	"slices"
	"strings"
)

// Line positions within a block.
const (
	lineDate = iota
	lineSubstances
	lineMedication
	lineRoutines
	lineSleep
	lineDescription
	lineFeelings
)

// slot binds one fixed line position to the interpreter that fills its field.
type slot struct {
	line  int
	apply func(line string, entry *Entry)
}

var slots = []slot{
	{lineDate, func(l string, e *Entry) { e.Date = ParseDate(l) }},
	{lineSubstances, func(l string, e *Entry) { e.Substances = ParseSubstances(l) }},
	{lineMedication, func(l string, e *Entry) { e.Medication = ParseMedication(l) }},
	{lineRoutines, func(l string, e *Entry) { e.Routines = ParseRoutines(l) }},
	{lineSleep, func(l string, e *Entry) { e.Sleep = ParseSleepSchedule(l) }},
	{lineDescription, func(l string, e *Entry) { e.Description = optionalText(l) }},
	{lineFeelings, func(l string, e *Entry) { e.Feelings = optionalText(l) }},
}

// bulletPattern matches a UTF-8 bullet that was decoded as Windows-1252.
var bulletPattern = regexp.MustCompile(`^â€¢\s*`)

// Parse converts the whole journal text into entries. The result is the reverse
// of the order the blocks appear in, so the block typed last comes first.
func Parse(text string) []Entry {
	blocks := SplitBlocks(text)
	entries := make([]Entry, 0, len(blocks))
	for _, block := range blocks {
		entries = append(entries, ParseBlock(block))
	}
	slices.Reverse(entries)
	return entries
}

// SplitBlocks cuts text on blank-line separators and drops blocks holding only
// whitespace.
func SplitBlocks(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var blocks []string
	for _, block := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(block) == "" {
			continue
		}
		blocks = append(blocks, block)
	}
	return blocks
}

// NormalizeLines splits a block into trimmed lines with any leading bullet removed.
// Empty lines are kept so positions stay stable.
func NormalizeLines(block string) []string {
	raw := strings.Split(block, "\n")
	lines := make([]string, len(raw))
	for i, line := range raw {
		lines[i] = bulletPattern.ReplaceAllString(strings.TrimSpace(line), "")
	}
	return lines
}

// ParseBlock interprets a single block. Missing lines read as empty.
func ParseBlock(block string) Entry {
	lines := NormalizeLines(block)
	var entry Entry
	for _, s := range slots {
		s.apply(lineAt(lines, s.line), &entry)
	}
	return entry
}

func lineAt(lines []string, index int) string {
	if index < len(lines) {
		return lines[index]
	}
	return ""
}

func optionalText(line string) *string {
	if line == "" {
		return nil
	}
	return &line
}
