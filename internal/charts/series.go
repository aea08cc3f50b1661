// Package charts derives per-chart series from parsed journal entries and draws
// them as terminal text.
package charts

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/faizmokh/lifelog/internal/journal"
	"github.com/faizmokh/lifelog/internal/substances"
)

// Kind names one of the dashboard charts.
type Kind string

const (
	KindSleep      Kind = "sleep"
	KindSubstances Kind = "substances"
	KindRoutines   Kind = "routines"
	KindMedication Kind = "medication"
)

// Kinds lists the charts in dashboard order.
var Kinds = []Kind{KindSleep, KindSubstances, KindRoutines, KindMedication}

// ParseKind validates a chart name.
func ParseKind(value string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(value)))
	if slices.Contains(Kinds, kind) {
		return kind, nil
	}
	return "", fmt.Errorf("invalid chart %q (expected sleep|substances|routines|medication)", value)
}

// Window selects how far back a chart reaches. Days of zero means all time, in
// which case each chart falls back to its own fixed start date. Interval is the
// label stride: a date label is printed on every Interval+1-th row.
type Window struct {
	Label    string
	Key      string
	Days     int
	Interval int
}

// Windows are the selectable ranges, shortest first.
var Windows = []Window{
	{Label: "7 Days", Key: "7d", Days: 8, Interval: 1},
	{Label: "14 Days", Key: "14d", Days: 15, Interval: 1},
	{Label: "28 Days", Key: "28d", Days: 29, Interval: 3},
	{Label: "All Time", Key: "all", Days: 0, Interval: 8},
}

// DefaultWindow is the 28 day range.
func DefaultWindow() Window {
	return Windows[2]
}

// ParseWindow resolves a window key such as "7d" or "all".
func ParseWindow(value string) (Window, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, w := range Windows {
		if w.Key == value {
			return w, nil
		}
	}
	return Window{}, fmt.Errorf("invalid window %q (expected 7d|14d|28d|all)", value)
}

// allTimeStart holds the earliest date each chart shows when no duration is set.
var allTimeStart = map[Kind]time.Time{
	KindSleep:      time.Date(2024, time.December, 10, 0, 0, 0, 0, time.UTC),
	KindSubstances: time.Date(2024, time.October, 24, 0, 0, 0, 0, time.UTC),
	KindRoutines:   time.Date(2024, time.December, 21, 0, 0, 0, 0, time.UTC),
	KindMedication: time.Date(2024, time.November, 10, 0, 0, 0, 0, time.UTC),
}

// Cutoff returns the earliest date included in the chart.
func Cutoff(kind Kind, w Window, now time.Time) time.Time {
	if w.Days > 0 {
		return now.AddDate(0, 0, -w.Days)
	}
	return allTimeStart[kind]
}

// since keeps entries dated on or after cutoff. Entries with an invalid date
// hold the zero time and never pass.
func since(entries []journal.Entry, cutoff time.Time) []journal.Entry {
	var kept []journal.Entry
	for _, entry := range entries {
		if !entry.Date.Before(cutoff) {
			kept = append(kept, entry)
		}
	}
	return kept
}

// DateLabel formats a point's axis label.
func DateLabel(date time.Time) string {
	if date.IsZero() {
		return "Unknown"
	}
	return date.Format("Jan 2, 06")
}

// SleepPoint is one day on the sleep chart. Wakeup is read from the
// fell-asleep slot and Bedtime from the woke-up slot, as the journal names them.
type SleepPoint struct {
	Date        time.Time
	Label       string
	Wakeup      *float64
	Bedtime     *float64
	Schedule    journal.SleepSchedule
	Description *string
	Feelings    *string
}

// SleepSeries returns sleep points sorted by date, oldest first.
func SleepSeries(entries []journal.Entry, w Window, now time.Time) []SleepPoint {
	kept := since(entries, Cutoff(KindSleep, w, now))
	points := make([]SleepPoint, 0, len(kept))
	for _, entry := range kept {
		points = append(points, SleepPoint{
			Date:        entry.Date,
			Label:       DateLabel(entry.Date),
			Wakeup:      clockToHours(entry.Sleep.Morning),
			Bedtime:     clockToHours(entry.Sleep.Night),
			Schedule:    entry.Sleep,
			Description: entry.Description,
			Feelings:    entry.Feelings,
		})
	}
	slices.SortStableFunc(points, func(a, b SleepPoint) int {
		return a.Date.Compare(b.Date)
	})
	return points
}

// SubstancePoint is one day on the substance chart.
type SubstancePoint struct {
	Date        time.Time
	Label       string
	Intensity   int
	Substances  *string
	Description *string
	Feelings    *string
}

// SubstanceSeries scores each entry with the intensity table, keeping parser order.
func SubstanceSeries(entries []journal.Entry, w Window, now time.Time) []SubstancePoint {
	kept := since(entries, Cutoff(KindSubstances, w, now))
	points := make([]SubstancePoint, 0, len(kept))
	for _, entry := range kept {
		points = append(points, SubstancePoint{
			Date:        entry.Date,
			Label:       DateLabel(entry.Date),
			Intensity:   substances.Intensity(entry.Substances),
			Substances:  entry.Substances,
			Description: entry.Description,
			Feelings:    entry.Feelings,
		})
	}
	return points
}

// RoutinePoint is one day on the routine chart. Missing flags read as false.
type RoutinePoint struct {
	Date    time.Time
	Label   string
	Morning bool
	Work    bool
	Night   bool
}

// RoutineSeries flattens routine flags, keeping parser order.
func RoutineSeries(entries []journal.Entry, w Window, now time.Time) []RoutinePoint {
	kept := since(entries, Cutoff(KindRoutines, w, now))
	points := make([]RoutinePoint, 0, len(kept))
	for _, entry := range kept {
		points = append(points, RoutinePoint{
			Date:    entry.Date,
			Label:   DateLabel(entry.Date),
			Morning: isTrue(entry.Routines.Morning),
			Work:    isTrue(entry.Routines.Work),
			Night:   isTrue(entry.Routines.Night),
		})
	}
	return points
}

// MedicationPoint is one day on the medication chart. Value is the dose amount,
// or 1 when no positive amount was recorded.
type MedicationPoint struct {
	Date        time.Time
	Label       string
	Type        journal.MedicationType
	Amount      *int
	Value       int
	Description *string
	Feelings    *string
}

// MedicationSeries keeps parser order.
func MedicationSeries(entries []journal.Entry, w Window, now time.Time) []MedicationPoint {
	kept := since(entries, Cutoff(KindMedication, w, now))
	points := make([]MedicationPoint, 0, len(kept))
	for _, entry := range kept {
		value := 1
		if amount := entry.Medication.Amount; amount != nil && *amount != 0 {
			value = *amount
		}
		points = append(points, MedicationPoint{
			Date:        entry.Date,
			Label:       DateLabel(entry.Date),
			Type:        entry.Medication.Type,
			Amount:      entry.Medication.Amount,
			Value:       value,
			Description: entry.Description,
			Feelings:    entry.Feelings,
		})
	}
	return points
}

// clockToHours converts H:MM to decimal hours. Unparsable values give nil.
func clockToHours(clock *string) *float64 {
	if clock == nil {
		return nil
	}
	hourPart, minutePart, ok := strings.Cut(*clock, ":")
	if !ok {
		return nil
	}
	hours, err := strconv.Atoi(hourPart)
	if err != nil {
		return nil
	}
	minutes, err := strconv.Atoi(minutePart)
	if err != nil {
		return nil
	}
	v := float64(hours) + float64(minutes)/60
	return &v
}

// FormatClock renders decimal hours as HH:MM.
func FormatClock(hours float64) string {
	whole := int(hours)
	minutes := int((hours-float64(whole))*60 + 0.5)
	if minutes == 60 {
		whole++
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", whole, minutes)
}

func isTrue(v *bool) bool {
	return v != nil && *v
}
