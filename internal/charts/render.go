package charts

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/lifelog/internal/journal"
)

// Chart colors.
var (
	colorFirst  = lipgloss.Color("#e57373")
	colorSecond = lipgloss.Color("#4db6ac")
	colorDone   = lipgloss.Color("#22c55e")
	colorMTP    = lipgloss.Color("#f97316")
	colorMuted  = lipgloss.Color("#6b7280")

	titleStyle       = lipgloss.NewStyle().Bold(true)
	descriptionStyle = lipgloss.NewStyle().Foreground(colorMuted)
	wakeupStyle      = lipgloss.NewStyle().Foreground(colorFirst)
	bedtimeStyle     = lipgloss.NewStyle().Foreground(colorSecond)
	doneStyle        = lipgloss.NewStyle().Foreground(colorDone)
	missedStyle      = lipgloss.NewStyle().Foreground(colorMuted)
	mtpStyle         = lipgloss.NewStyle().Foreground(colorMTP)
	mwoStyle         = lipgloss.NewStyle().Foreground(colorDone)
	boxStyle         = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorMuted).
				Padding(0, 1)
)

const (
	labelWidth = len("Jan 02, 06")
	// The sleep axis spans 0 to 14 hours at two columns per hour.
	sleepAxisHours = 14
	sleepColsPerHr = 2
	maxBar         = 40
)

type heading struct {
	title       string
	description string
}

var headings = map[Kind]heading{
	KindSleep:      {"Sleep", "Daily Wakeup and Sleep time"},
	KindSubstances: {"Substances", "Daily Substance Level"},
	KindRoutines:   {"Routines", "Daily Morning, Work and Night routine"},
	KindMedication: {"M Types", "Daily mTypes"},
}

// Render draws one chart for the given window.
func Render(kind Kind, entries []journal.Entry, w Window, now time.Time) string {
	var body string
	switch kind {
	case KindSleep:
		body = RenderSleep(SleepSeries(entries, w, now), w.Interval)
	case KindSubstances:
		body = RenderSubstances(SubstanceSeries(entries, w, now), w.Interval)
	case KindRoutines:
		body = RenderRoutines(RoutineSeries(entries, w, now), w.Interval)
	case KindMedication:
		body = RenderMedication(MedicationSeries(entries, w, now), w.Interval)
	default:
		return ""
	}

	h := headings[kind]
	var b strings.Builder
	b.WriteString(titleStyle.Render(h.title))
	b.WriteByte('\n')
	b.WriteString(descriptionStyle.Render(h.description + " (" + w.Label + ")"))
	b.WriteString("\n\n")
	b.WriteString(body)
	return boxStyle.Render(b.String())
}

// Dashboard stacks every chart.
func Dashboard(entries []journal.Entry, w Window, now time.Time) string {
	parts := make([]string, 0, len(Kinds))
	for _, kind := range Kinds {
		parts = append(parts, Render(kind, entries, w, now))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// rowLabel prints the date on every interval+1-th row and pads the others.
func rowLabel(i, interval int, label string) string {
	if interval < 0 {
		interval = 0
	}
	if i%(interval+1) != 0 {
		label = ""
	}
	return fmt.Sprintf("%-*s", labelWidth, label)
}

const noData = "(no data)\n"

// RenderSleep draws both sleep lines on a 00:00 to 14:00 axis.
func RenderSleep(points []SleepPoint, interval int) string {
	if len(points) == 0 {
		return noData
	}
	width := sleepAxisHours*sleepColsPerHr + 1

	var b strings.Builder
	axis := FormatClock(0) + strings.Repeat(" ", width-10) + FormatClock(sleepAxisHours)
	fmt.Fprintf(&b, "%-*s %s\n", labelWidth, "", axis)

	for i, p := range points {
		wake, bed := sleepColumn(p.Wakeup), sleepColumn(p.Bedtime)
		row := make([]string, width)
		for c := range row {
			row[c] = missedStyle.Render("·")
		}
		if bed >= 0 {
			row[bed] = bedtimeStyle.Render("◆")
		}
		if wake >= 0 {
			row[wake] = wakeupStyle.Render("●")
		}
		fmt.Fprintf(&b, "%s %s  %s / %s\n",
			rowLabel(i, interval, p.Label),
			strings.Join(row, ""),
			orNA(p.Schedule.Morning),
			orNA(p.Schedule.Night),
		)
	}
	b.WriteString(wakeupStyle.Render("● Wake Up Time") + "  " + bedtimeStyle.Render("◆ Bedtime") + "\n")
	return b.String()
}

func sleepColumn(hours *float64) int {
	if hours == nil {
		return -1
	}
	col := int(math.Round(*hours * sleepColsPerHr))
	return max(0, min(col, sleepAxisHours*sleepColsPerHr))
}

// RenderSubstances draws one bar per day, N/A for unknown descriptions.
func RenderSubstances(points []SubstancePoint, interval int) string {
	if len(points) == 0 {
		return noData
	}
	var b strings.Builder
	for i, p := range points {
		bar := "N/A"
		if p.Intensity >= 0 {
			bar = wakeupStyle.Render(strings.Repeat("█", p.Intensity)) + fmt.Sprintf(" %d", p.Intensity)
		}
		fmt.Fprintf(&b, "%s %s\n", rowLabel(i, interval, p.Label), bar)
	}
	return b.String()
}

// RenderRoutines draws a morning/work/night grid.
func RenderRoutines(points []RoutinePoint, interval int) string {
	if len(points) == 0 {
		return noData
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-*s M W N\n", labelWidth, "")
	for i, p := range points {
		fmt.Fprintf(&b, "%s %s %s %s\n",
			rowLabel(i, interval, p.Label),
			routineCell(p.Morning), routineCell(p.Work), routineCell(p.Night),
		)
	}
	return b.String()
}

func routineCell(done bool) string {
	if done {
		return doneStyle.Render("■")
	}
	return missedStyle.Render("□")
}

// RenderMedication draws a bar sized by dose, colored by type.
func RenderMedication(points []MedicationPoint, interval int) string {
	if len(points) == 0 {
		return noData
	}
	var b strings.Builder
	for i, p := range points {
		width := max(0, min(p.Value, maxBar))
		var bar string
		switch p.Type {
		case journal.MedicationMTP:
			bar = mtpStyle.Render(strings.Repeat("█", width)) + " MTP"
		case journal.MedicationMWO:
			bar = mwoStyle.Render(strings.Repeat("█", width)) + " MWO"
		case journal.MedicationNo:
			bar = missedStyle.Render(strings.Repeat("░", width)) + " No"
		default:
			bar = missedStyle.Render(strings.Repeat("░", width))
		}
		fmt.Fprintf(&b, "%s %s\n", rowLabel(i, interval, p.Label), bar)
	}
	return b.String()
}

func orNA(s *string) string {
	if s == nil {
		return "N/A"
	}
	return *s
}
