package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/manav03panchal/habitgrid/internal/errors"
	"github.com/manav03panchal/habitgrid/internal/model"
	"github.com/manav03panchal/habitgrid/internal/storage"
	"github.com/manav03panchal/habitgrid/internal/validate"
)

// refreshMsg is sent when data needs to be reloaded from the store.
type refreshMsg struct{}

// errMsg is sent when an operation fails.
type errMsg struct {
	err error
}

// ChecklistModel is the bubbletea model for the daily checklist.
type ChecklistModel struct {
	store *storage.Store
	now   func() time.Time

	// Data
	table *model.Table
	today string

	// UI state
	cursor     int
	adding     bool
	input      string
	width      int
	height     int
	loadFailed bool
	err        error
	message    string
}

// ChecklistConfig holds configuration for the checklist.
type ChecklistConfig struct {
	Store *storage.Store
	Now   func() time.Time
}

// NewChecklistModel creates a new checklist model.
func NewChecklistModel(config ChecklistConfig) *ChecklistModel {
	if config.Now == nil {
		config.Now = time.Now
	}
	return &ChecklistModel{
		store: config.Store,
		now:   config.Now,
		table: model.NewTable(),
	}
}

// Init initializes the model.
func (m *ChecklistModel) Init() tea.Cmd {
	return m.refreshCmd()
}

// Update handles messages and updates the model.
func (m *ChecklistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case refreshMsg:
		m.loadData()
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *ChecklistModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.adding {
		return m.handleAddInput(msg)
	}

	m.message = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.table.Habits)-1 {
			m.cursor++
		}

	case " ", "enter":
		m.toggleCurrent()

	case "a":
		m.adding = true
		m.input = ""
		m.err = nil

	case "r":
		return m, m.refreshCmd()
	}

	return m, nil
}

// handleAddInput handles keys while the add-habit prompt is open.
func (m *ChecklistModel) handleAddInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.input = ""

	case "enter":
		m.submitAdd()

	case "backspace":
		if len(m.input) > 0 {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}

	case "ctrl+c":
		return m, tea.Quit

	default:
		if msg.Type == tea.KeyRunes {
			m.input += string(msg.Runes)
		} else if msg.String() == " " {
			m.input += " "
		}
	}

	return m, nil
}

// loadData runs one load and ensure-today cycle against the store.
func (m *ChecklistModel) loadData() {
	m.today = model.Day(m.now())

	table, err := m.store.Load()
	m.table = table
	m.err = err
	m.loadFailed = err != nil
	// Opening or refreshing the checklist never writes over a file that
	// failed to load; the ensured row stays in memory until it is fixed.
	if table.EnsureDay(m.today) && !m.loadFailed {
		if saveErr := m.store.Save(table); saveErr != nil {
			m.err = saveErr
		}
	}
	if m.cursor >= len(table.Habits) {
		m.cursor = 0
	}
}

// toggleCurrent flips the selected habit for today and saves.
func (m *ChecklistModel) toggleCurrent() {
	if m.loadFailed {
		m.err = errors.New("habit file is unreadable; fix or remove it before making changes")
		return
	}
	if len(m.table.Habits) == 0 || m.cursor >= len(m.table.Habits) {
		return
	}
	habit := m.table.Habits[m.cursor]
	done, _ := m.table.Cell(m.today, habit)
	if err := m.table.SetCell(m.today, habit, !done); err != nil {
		m.err = err
		return
	}
	// A failed save keeps the in-memory value for the rest of the session.
	if err := m.store.Save(m.table); err != nil {
		m.err = err
		return
	}
	m.err = nil
}

// submitAdd validates and adds the habit typed into the prompt.
func (m *ChecklistModel) submitAdd() {
	if m.loadFailed {
		m.err = errors.New("habit file is unreadable; fix or remove it before making changes")
		return
	}
	name := validate.SanitizeHabitName(m.input)
	if err := validate.HabitName(name); err != nil {
		m.err = err
		return
	}
	if err := m.table.AddHabit(name); err != nil {
		m.err = err
		return
	}
	if err := m.store.Save(m.table); err != nil {
		m.err = err
		return
	}
	m.adding = false
	m.input = ""
	m.err = nil
	m.message = "Habit '" + name + "' added!"
	m.cursor = len(m.table.Habits) - 1
}

// refreshCmd returns a command that triggers a data refresh.
func (m *ChecklistModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshMsg{}
	}
}

// View renders the checklist.
func (m *ChecklistModel) View() string {
	var sb strings.Builder

	sb.WriteString(StyleTitle.Render("Habitgrid (" + m.today + ")"))
	sb.WriteString("\n")

	if len(m.table.Habits) == 0 {
		sb.WriteString(StylePending.Render("No habits yet. Press 'a' to add one."))
		sb.WriteString("\n")
	}

	for i, habit := range m.table.Habits {
		done, _ := m.table.Cell(m.today, habit)

		cursor := "  "
		if i == m.cursor && !m.adding {
			cursor = StyleCursor.Render("› ")
		}

		box := "[ ]"
		style := StylePending
		if done {
			box = "[x]"
			style = StyleDone
		}
		sb.WriteString(cursor + style.Render(box+" "+habit))
		sb.WriteString("\n")
	}

	if m.adding {
		sb.WriteString("\n")
		sb.WriteString(StylePrompt.Render("New habit: " + m.input + "█"))
		sb.WriteString("\n")
	}

	if m.message != "" {
		sb.WriteString("\n")
		sb.WriteString(StyleMessage.Render("✓ " + m.message))
		sb.WriteString("\n")
	}
	if m.err != nil {
		sb.WriteString("\n")
		sb.WriteString(StyleError.Render("✗ " + m.err.Error()))
		sb.WriteString("\n")
	}

	if m.adding {
		sb.WriteString(StyleHelp.Render("enter save · esc cancel"))
	} else {
		sb.WriteString(StyleHelp.Render("space toggle · a add · j/k move · r reload · q quit"))
	}
	sb.WriteString("\n")

	return sb.String()
}

// Run starts the checklist program.
func Run(config ChecklistConfig) error {
	p := tea.NewProgram(NewChecklistModel(config), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
