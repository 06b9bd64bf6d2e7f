// Package tui provides the terminal user interface for Habitgrid.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI checklist.
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorWarning = lipgloss.Color("#F59E0B") // Yellow
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorSuccess = lipgloss.Color("#10B981") // Green
)

// Base styles for the TUI.
var (
	// StyleTitle is used for the header line.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	// StyleDone is used for completed habits.
	StyleDone = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// StylePending is used for habits not yet done today.
	StylePending = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleCursor is used for the selection marker.
	StyleCursor = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StyleMessage is used for transient status messages.
	StyleMessage = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// StyleError is used for error messages.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleHelp is used for the key help line.
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	// StylePrompt is used for the inline add-habit prompt.
	StylePrompt = lipgloss.NewStyle().
			Foreground(ColorWarning)
)
