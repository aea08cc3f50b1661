package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/lifelog/internal/charts"
	"github.com/faizmokh/lifelog/internal/journal"
	"github.com/faizmokh/lifelog/internal/storage"
)

// Model owns Bubble Tea state for the dashboard and the paste box.
type Model struct {
	ctx     context.Context
	journal *storage.Journal
	now     func() time.Time

	entries []journal.Entry
	window  int

	mode     mode
	input    textarea.Model
	viewport viewport.Model

	loading    bool
	statusLine string
}

type mode uint8

const (
	modeDashboard mode = iota
	modeInput
)

// chrome is the number of rows taken by the header, selector, status and help.
const chrome = 7

type journalLoadedMsg struct {
	entries []journal.Entry
}

type journalWrittenMsg struct{}

type journalClearedMsg struct{}

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1)
	optionStyle   = lipgloss.NewStyle().Padding(0, 1)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
)

// NewModel seeds a Bubble Tea model with required collaborators. now may be nil.
func NewModel(ctx context.Context, store *storage.Journal, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}

	input := textarea.New()
	input.Placeholder = "Enter your journal ..."
	input.CharLimit = 0
	input.MaxHeight = 0
	input.ShowLineNumbers = false
	input.SetWidth(80)
	input.SetHeight(20)

	return Model{
		ctx:        ctx,
		journal:    store,
		now:        now,
		window:     defaultWindowIndex(),
		mode:       modeDashboard,
		input:      input,
		viewport:   viewport.New(80, 20),
		loading:    true,
		statusLine: "Loading journal...",
	}
}

func defaultWindowIndex() int {
	def := charts.DefaultWindow()
	for i, w := range charts.Windows {
		if w == def {
			return i
		}
	}
	return 0
}

// Init loads the stored journal.
func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

// Update wires TUI state transitions from user input and async commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg)
	case tea.KeyMsg:
		if m.mode == modeInput {
			return m.handleInputKey(msg)
		}
		return m.handleKey(msg)
	case journalLoadedMsg:
		m.loading = false
		m.entries = msg.entries
		m.statusLine = fmt.Sprintf("Loaded %d entr%s.", len(m.entries), plural(len(m.entries)))
		m.refresh()
		return m, nil
	case journalWrittenMsg:
		m.statusLine = "Journal updated."
		m.loading = true
		return m, m.loadCmd()
	case journalClearedMsg:
		m.statusLine = "Journal deleted."
		m.loading = true
		return m, m.loadCmd()
	}

	if m.mode == modeInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) resize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	height := max(msg.Height-chrome, 3)
	m.viewport.Width = msg.Width
	m.viewport.Height = height
	m.input.SetWidth(msg.Width)
	m.input.SetHeight(height)
	m.refresh()
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "1", "2", "3", "4":
		idx := int(msg.String()[0] - '1')
		if idx < len(charts.Windows) {
			m.window = idx
			m.statusLine = "Showing " + charts.Windows[idx].Label + "."
			m.refresh()
		}
		return m, nil
	case "r":
		m.loading = true
		m.statusLine = "Reloading..."
		return m, m.loadCmd()
	case "i":
		m.mode = modeInput
		m.statusLine = ""
		m.input.Focus()
		return m, textarea.Blink
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.mode = modeDashboard
		m.input.Blur()
		m.statusLine = "Cancelled."
		return m, nil
	case tea.KeyCtrlS:
		text := m.input.Value()
		m.leaveInput()
		m.statusLine = "Saving journal..."
		return m, m.writeCmd(text)
	case tea.KeyCtrlD:
		m.leaveInput()
		m.statusLine = "Deleting journal..."
		return m, m.clearCmd()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) leaveInput() {
	m.input.Reset()
	m.input.Blur()
	m.mode = modeDashboard
}

func (m *Model) refresh() {
	m.viewport.SetContent(charts.Dashboard(m.entries, charts.Windows[m.window], m.now()))
}

func (m Model) loadCmd() tea.Cmd {
	store, ctx := m.journal, m.ctx
	return func() tea.Msg {
		return journalLoadedMsg{entries: store.ReadParsed(ctx)}
	}
}

func (m Model) writeCmd(text string) tea.Cmd {
	store, ctx := m.journal, m.ctx
	return func() tea.Msg {
		store.Write(ctx, text)
		return journalWrittenMsg{}
	}
}

func (m Model) clearCmd() tea.Cmd {
	store, ctx := m.journal, m.ctx
	return func() tea.Msg {
		store.Clear(ctx)
		return journalClearedMsg{}
	}
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	if m.mode == modeInput {
		b.WriteString(headerStyle.Render("Input"))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("ctrl+s update  ctrl+d delete  esc back"))
		b.WriteByte('\n')
		return b.String()
	}

	b.WriteString(headerStyle.Render("Home"))
	b.WriteString("\n\n")
	options := make([]string, len(charts.Windows))
	for i, w := range charts.Windows {
		label := fmt.Sprintf("%d %s", i+1, w.Label)
		if i == m.window {
			options[i] = selectedStyle.Render(label)
		} else {
			options[i] = optionStyle.Render(label)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, options...))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...\n")
	} else {
		b.WriteString(m.viewport.View())
		b.WriteByte('\n')
	}

	if m.statusLine != "" {
		b.WriteString(m.statusLine)
		b.WriteByte('\n')
	}
	b.WriteString(helpStyle.Render("1-4 range  i input  r reload  up/down scroll  q quit"))
	b.WriteByte('\n')

	return b.String()
}

func plural(count int) string {
	if count == 1 {
		return "y"
	}
	return "ies"
}
