// Package validate provides input validation helpers for the Habitgrid CLI.
package validate

import (
	"net"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/manav03panchal/habitgrid/internal/errors"
	"github.com/manav03panchal/habitgrid/internal/model"
)

const (
	// MaxHabitNameLength is the maximum length for a habit name.
	MaxHabitNameLength = 64
)

// HabitName validates a proposed habit column name.
// The comma restriction keeps names unambiguous in the comma-delimited store.
func HabitName(name string) error {
	if name == "" {
		return errors.NewUserError("Habit name cannot be empty",
			"Provide a habit name, e.g. 'habitgrid add Exercise'")
	}
	if utf8.RuneCountInString(name) > MaxHabitNameLength {
		return errors.NewUserErrorWithField("habit", name,
			"Habit name too long",
			"Habit names must be 64 characters or fewer")
	}
	if name == model.DateColumn {
		return errors.NewUserErrorWithField("habit", name,
			"Habit name is reserved",
			"'Date' is the table's date column; pick another name")
	}
	if strings.Contains(name, ",") {
		return errors.NewUserErrorWithField("habit", name,
			"Habit name cannot contain commas",
			"Use spaces, dashes, or underscores instead")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return errors.NewUserErrorWithField("habit", name,
				"Habit name contains control characters",
				"Use printable characters only")
		}
	}
	return nil
}

// Addr validates a listen address of the form host:port.
func Addr(addr string) error {
	if addr == "" {
		return errors.NewUserError("Listen address cannot be empty",
			"Use host:port form like ':8501' or '127.0.0.1:8080'")
	}
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return errors.NewUserErrorWithField("addr", addr,
			"Invalid listen address",
			"Use host:port form like ':8501' or '127.0.0.1:8080'")
	}
	return nil
}

// SanitizeHabitName trims whitespace and strips control characters from a
// user-entered habit name before validation.
func SanitizeHabitName(name string) string {
	name = strings.TrimSpace(name)

	var sb strings.Builder
	sb.Grow(len(name))
	for _, r := range name {
		if !unicode.IsControl(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
