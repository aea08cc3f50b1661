package journal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseDate reads the DD.MM.YY token in front of the first comma. Years are taken
// as 2000+YY. Any missing or non-numeric component yields the zero time.
func ParseDate(line string) time.Time {
	head, _, _ := strings.Cut(line, ",")
	parts := strings.Split(head, ".")
	if len(parts) < 3 {
		return time.Time{}
	}

	var nums [3]int
	for i := range nums {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return time.Time{}
		}
		nums[i] = n
	}

	day, month, year := nums[0], nums[1], nums[2]
	return time.Date(2000+year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// ParseSubstances lowercases the line verbatim.
func ParseSubstances(line string) *string {
	if line == "" {
		return nil
	}
	lowered := strings.ToLower(line)
	return &lowered
}

// medicationRule is one step of the medication chain; the first rule that
// matches decides the result.
type medicationRule struct {
	name  string
	match func(line string) (Medication, bool)
}

var dosePattern = regexp.MustCompile(`(?i)(\d+)\s*(mtp|mwo)`)

var medicationRules = []medicationRule{
	{"no", func(line string) (Medication, bool) {
		return Medication{Type: MedicationNo}, line == "no"
	}},
	{"dose", func(line string) (Medication, bool) {
		m := dosePattern.FindStringSubmatch(line)
		if m == nil {
			return Medication{}, false
		}
		med := Medication{Type: MedicationType(strings.ToUpper(m[2]))}
		if amount, err := strconv.Atoi(m[1]); err == nil {
			med.Amount = &amount
		}
		return med, true
	}},
	{"mtp", func(line string) (Medication, bool) {
		return Medication{Type: MedicationMTP}, strings.Contains(line, "mtp")
	}},
	{"mwo", func(line string) (Medication, bool) {
		return Medication{Type: MedicationMWO}, strings.Contains(line, "mwo")
	}},
}

// ParseMedication runs the medication rules in priority order. Lines no rule
// recognizes produce an empty Medication.
func ParseMedication(line string) Medication {
	if line == "" {
		return Medication{}
	}
	line = strings.ToLower(line)
	for _, rule := range medicationRules {
		if med, ok := rule.match(line); ok {
			return med
		}
	}
	return Medication{}
}

// ParseRoutines maps "yes, no, yes" onto the three routine flags. Anything other
// than exactly three comma separated parts leaves all flags nil.
func ParseRoutines(line string) Routines {
	if line == "" {
		return Routines{}
	}
	parts := strings.Split(strings.ToLower(line), ",")
	if len(parts) != 3 {
		return Routines{}
	}

	flags := make([]*bool, len(parts))
	for i, part := range parts {
		done := strings.TrimSpace(part) == "yes"
		flags[i] = &done
	}
	return Routines{Morning: flags[0], Work: flags[1], Night: flags[2]}
}

// timeRule converts one time token to H:MM.
type timeRule struct {
	name    string
	pattern *regexp.Regexp
	format  func(groups []string) string
}

var timeRules = []timeRule{
	{
		name:    "dotted",
		pattern: regexp.MustCompile(`(\d+)\.(\d+)`),
		format: func(g []string) string {
			minutes := g[2]
			if len(minutes) == 1 {
				// "1.3" is half past one.
				tens, _ := strconv.Atoi(minutes)
				minutes = fmt.Sprintf("%02d", tens*10)
			}
			return g[1] + ":" + minutes
		},
	},
	{
		name:    "plain",
		pattern: regexp.MustCompile(`(\d+)(?::(\d+))?`),
		format: func(g []string) string {
			if g[2] == "" {
				return g[1] + ":00"
			}
			return g[1] + ":" + g[2]
		},
	},
}

func parseTimeToken(token string) *string {
	for _, rule := range timeRules {
		if m := rule.pattern.FindStringSubmatch(token); m != nil {
			value := rule.format(m)
			return &value
		}
	}
	return nil
}

// ParseSleepSchedule splits the line on the word "and" into the fell-asleep and
// woke-up tokens.
func ParseSleepSchedule(line string) SleepSchedule {
	if line == "" {
		return SleepSchedule{}
	}
	tokens := strings.Split(strings.ToLower(line), "and")

	schedule := SleepSchedule{Morning: parseTimeToken(tokens[0])}
	if len(tokens) > 1 {
		schedule.Night = parseTimeToken(tokens[1])
	}
	return schedule
}
