// Package model defines the domain model for Habitgrid: a table of days
// against boolean habit columns.
package model

import (
	"github.com/manav03panchal/habitgrid/internal/errors"
)

// DateColumn is the fixed first column of every table.
const DateColumn = "Date"

// Row is one day in the table: a canonical date plus one boolean per habit.
// A habit missing from Cells reads as false.
type Row struct {
	Date  string          `json:"date"`
	Cells map[string]bool `json:"cells"`
}

// Value returns the cell value for a habit, defaulting to false.
func (r *Row) Value(habit string) bool {
	return r.Cells[habit]
}

// Table is the habit table: an ordered list of habit columns and one row
// per day, in store order. The Date column is implicit and always first.
type Table struct {
	Habits []string `json:"habits"`
	Rows   []Row    `json:"rows"`
}

// NewTable creates an empty table with only the Date column.
func NewTable() *Table {
	return &Table{}
}

// Header returns the column names in store order, starting with Date.
func (t *Table) Header() []string {
	header := make([]string, 0, len(t.Habits)+1)
	header = append(header, DateColumn)
	header = append(header, t.Habits...)
	return header
}

// HasHabit reports whether a habit column exists.
func (t *Table) HasHabit(name string) bool {
	for _, h := range t.Habits {
		if h == name {
			return true
		}
	}
	return false
}

// FindRow returns the first row matching the given day, or nil.
// Rows are unique by day under normal operation; after a hand-edited
// store introduces duplicates, only the first match is ever addressed.
func (t *Table) FindRow(day string) *Row {
	for i := range t.Rows {
		if t.Rows[i].Date == day {
			return &t.Rows[i]
		}
	}
	return nil
}

// EnsureDay appends a row for the given day with every habit set to false,
// unless one already exists. It reports whether a row was added.
// Calling it twice with the same day never produces a duplicate.
func (t *Table) EnsureDay(day string) bool {
	if t.FindRow(day) != nil {
		return false
	}
	cells := make(map[string]bool, len(t.Habits))
	for _, h := range t.Habits {
		cells[h] = false
	}
	t.Rows = append(t.Rows, Row{Date: day, Cells: cells})
	return true
}

// AddHabit appends a new habit column, backfilling every existing row with
// false. The name must be non-empty, not already present, and not the
// reserved Date column. On error the table is unchanged.
func (t *Table) AddHabit(name string) error {
	if name == "" {
		return errors.ErrInvalidHabitName
	}
	if name == DateColumn {
		return errors.NewUserErrorWithField("habit", name,
			"Habit name is reserved",
			"'Date' is the table's date column; pick another name.")
	}
	if t.HasHabit(name) {
		return errors.WithContextf(errors.ErrDuplicateHabit, "habit '%s'", name)
	}
	t.Habits = append(t.Habits, name)
	for i := range t.Rows {
		if t.Rows[i].Cells == nil {
			t.Rows[i].Cells = make(map[string]bool, 1)
		}
		t.Rows[i].Cells[name] = false
	}
	return nil
}

// SetCell sets the boolean cell at (day, habit) to value. It fails with
// ErrDayNotFound when no row matches the day and ErrHabitNotFound when the
// column is unknown; no other cell is touched in either case.
func (t *Table) SetCell(day, habit string, value bool) error {
	if !t.HasHabit(habit) {
		return errors.WithContextf(errors.ErrHabitNotFound, "habit '%s'", habit)
	}
	row := t.FindRow(day)
	if row == nil {
		return errors.WithContextf(errors.ErrDayNotFound, "day '%s'", day)
	}
	if row.Cells == nil {
		row.Cells = make(map[string]bool, 1)
	}
	row.Cells[habit] = value
	return nil
}

// Cell returns the value at (day, habit), defaulting to false when the row
// or the cell is absent, and whether the row exists at all.
func (t *Table) Cell(day, habit string) (value, rowExists bool) {
	row := t.FindRow(day)
	if row == nil {
		return false, false
	}
	return row.Value(habit), true
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	clone := &Table{}
	if t.Habits != nil {
		clone.Habits = append([]string(nil), t.Habits...)
	}
	if t.Rows != nil {
		clone.Rows = make([]Row, len(t.Rows))
		for i, row := range t.Rows {
			cells := make(map[string]bool, len(row.Cells))
			for k, v := range row.Cells {
				cells[k] = v
			}
			clone.Rows[i] = Row{Date: row.Date, Cells: cells}
		}
	}
	return clone
}
