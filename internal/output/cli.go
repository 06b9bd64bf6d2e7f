package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/habitgrid/internal/model"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleHabit = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleDone = lipgloss.NewStyle().
			Foreground(colorSuccess)

	stylePending = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("⚠ " + text))
	} else {
		c.Println("⚠ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// HabitName formats a habit name.
func (c *CLIFormatter) HabitName(name string) string {
	if c.IsColorEnabled() {
		return styleHabit.Render(name)
	}
	return name
}

// ChecklistLine formats one habit line of a day's checklist.
func (c *CLIFormatter) ChecklistLine(habit string, done bool) string {
	box := "[ ]"
	if done {
		box = "[x]"
	}
	line := box + " " + habit
	if !c.IsColorEnabled() {
		return line
	}
	if done {
		return styleDone.Render(line)
	}
	return stylePending.Render(line)
}

// PrintChecklist prints a day's habits as a checklist.
func (c *CLIFormatter) PrintChecklist(table *model.Table, day string) {
	if len(table.Habits) == 0 {
		c.Muted("No habits added yet. Add one with 'habitgrid add <name>'.")
		return
	}
	for _, habit := range table.Habits {
		done, _ := table.Cell(day, habit)
		c.Println(c.ChecklistLine(habit, done))
	}
}

// PrintTable prints the raw habit table, clamped to the given width.
// A width of zero means unclamped.
func (c *CLIFormatter) PrintTable(table *model.Table, width int) {
	header := table.Header()

	// Column widths: date column is fixed, habit columns fit their names.
	widths := make([]int, len(header))
	for i, name := range header {
		widths[i] = len(name)
	}
	widths[0] = len(model.DayFormat)

	var lines []string
	lines = append(lines, formatRecord(header, widths))
	for _, row := range table.Rows {
		record := make([]string, 0, len(header))
		record = append(record, row.Date)
		for _, habit := range table.Habits {
			record = append(record, boolMark(row.Value(habit)))
		}
		lines = append(lines, formatRecord(record, widths))
	}

	for _, line := range lines {
		if width > 0 && len(line) > width {
			line = line[:width]
		}
		c.Println(line)
	}
}

func formatRecord(fields []string, widths []int) string {
	var sb strings.Builder
	for i, field := range fields {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(field)
		for pad := len(field); pad < widths[i]; pad++ {
			sb.WriteByte(' ')
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

func boolMark(v bool) string {
	if v {
		return "x"
	}
	return "-"
}
