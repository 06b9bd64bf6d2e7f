package output

import (
	"github.com/manav03panchal/habitgrid/internal/model"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// RowOutput represents one table row in JSON output.
type RowOutput struct {
	Date   string          `json:"date"`
	Habits map[string]bool `json:"habits"`
}

// NewRowOutput creates a RowOutput from a table row.
func NewRowOutput(table *model.Table, row *model.Row) RowOutput {
	habits := make(map[string]bool, len(table.Habits))
	for _, habit := range table.Habits {
		habits[habit] = row.Value(habit)
	}
	return RowOutput{Date: row.Date, Habits: habits}
}

// DayResponse represents a single day's checklist in JSON.
type DayResponse struct {
	Status string    `json:"status"`
	Day    RowOutput `json:"day"`
}

// HabitsResponse represents the habit list in JSON.
type HabitsResponse struct {
	Status string   `json:"status"`
	Habits []string `json:"habits"`
}

// AddResponse represents the add command output in JSON.
type AddResponse struct {
	Status string   `json:"status"`
	Habit  string   `json:"habit"`
	Habits []string `json:"habits"`
}

// ToggleResponse represents a check/uncheck result in JSON.
type ToggleResponse struct {
	Status string `json:"status"`
	Date   string `json:"date"`
	Habit  string `json:"habit"`
	Value  bool   `json:"value"`
}

// TableResponse represents the full table in JSON.
type TableResponse struct {
	Status string      `json:"status"`
	Habits []string    `json:"habits"`
	Rows   []RowOutput `json:"rows"`
}

// NewTableResponse creates a TableResponse from a table.
func NewTableResponse(table *model.Table) TableResponse {
	rows := make([]RowOutput, 0, len(table.Rows))
	for i := range table.Rows {
		rows = append(rows, NewRowOutput(table, &table.Rows[i]))
	}
	habits := table.Habits
	if habits == nil {
		habits = []string{}
	}
	return TableResponse{Status: "ok", Habits: habits, Rows: rows}
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

// PrintError prints an error as JSON.
func (j *JSONFormatter) PrintError(status, message, suggestion string) error {
	return j.JSON(ErrorResponse{
		Status:     status,
		Error:      message,
		Suggestion: suggestion,
	})
}
