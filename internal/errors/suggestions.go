package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	// User input errors
	ErrInvalidHabitName: "Habit names must be non-empty, at most 64 characters, and cannot contain commas.",
	ErrDuplicateHabit:   "Use 'habitgrid habits' to see the habits you already track.",
	ErrHabitNotFound:    "Use 'habitgrid habits' to see available habits, or 'habitgrid add <name>' to create one.",
	ErrDayNotFound:      "Only days already in the store can be toggled. Run a command today to create today's row.",

	// System errors
	ErrStoreUnreadable: "The store file could not be parsed. Fix or remove it; habitgrid continues with an empty table.",
	ErrStoreUnwritable: "Check disk space and permissions on the data directory. Your changes are kept in memory for this session.",
	ErrSecretMissing:   "Set HABITGRID_PASSWORD before running 'habitgrid serve'.",
}

// GetSuggestion returns a suggestion for an error, if available.
// It walks the error chain to find matching suggestions.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	return ""
}
