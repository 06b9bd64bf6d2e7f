package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/manav03panchal/habitgrid/internal/errors"
)

// =============================================================================
// EnsureDay Tests
// =============================================================================

func TestEnsureDayAppendsRow(t *testing.T) {
	table := NewTable()

	added := table.EnsureDay("2024-01-01")
	assert.True(t, added)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "2024-01-01", table.Rows[0].Date)
}

func TestEnsureDayIdempotent(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.AddHabit("Gym"))

	table.EnsureDay("2024-01-01")
	added := table.EnsureDay("2024-01-01")

	assert.False(t, added)
	assert.Len(t, table.Rows, 1)
}

func TestEnsureDayBackfillsHabitsFalse(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.AddHabit("Gym"))
	require.NoError(t, table.AddHabit("Read"))

	table.EnsureDay("2024-01-01")

	row := table.FindRow("2024-01-01")
	require.NotNil(t, row)
	assert.False(t, row.Value("Gym"))
	assert.False(t, row.Value("Read"))
}

func TestEnsureDayLeavesOtherRowsAlone(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.AddHabit("Gym"))
	table.EnsureDay("2024-01-01")
	require.NoError(t, table.SetCell("2024-01-01", "Gym", true))

	table.EnsureDay("2024-01-02")

	v, ok := table.Cell("2024-01-01", "Gym")
	assert.True(t, ok)
	assert.True(t, v)
}

// =============================================================================
// AddHabit Tests
// =============================================================================

func TestAddHabit(t *testing.T) {
	t.Run("appends_column_in_order", func(t *testing.T) {
		table := NewTable()
		require.NoError(t, table.AddHabit("Gym"))
		require.NoError(t, table.AddHabit("Read"))

		assert.Equal(t, []string{"Gym", "Read"}, table.Habits)
		assert.Equal(t, []string{"Date", "Gym", "Read"}, table.Header())
	})

	t.Run("backfills_existing_rows_false", func(t *testing.T) {
		table := NewTable()
		require.NoError(t, table.AddHabit("Gym"))
		table.EnsureDay("2024-01-01")
		require.NoError(t, table.SetCell("2024-01-01", "Gym", true))

		require.NoError(t, table.AddHabit("Read"))

		row := table.FindRow("2024-01-01")
		require.NotNil(t, row)
		assert.True(t, row.Value("Gym"))
		assert.False(t, row.Value("Read"))
	})

	t.Run("rejects_empty_name", func(t *testing.T) {
		table := NewTable()
		table.EnsureDay("2024-01-01")
		before := table.Clone()

		err := table.AddHabit("")
		assert.ErrorIs(t, err, apperrors.ErrInvalidHabitName)
		assert.Equal(t, before, table)
	})

	t.Run("rejects_duplicate", func(t *testing.T) {
		table := NewTable()
		require.NoError(t, table.AddHabit("Gym"))
		before := table.Clone()

		err := table.AddHabit("Gym")
		assert.ErrorIs(t, err, apperrors.ErrDuplicateHabit)
		assert.Equal(t, before, table)
	})

	t.Run("rejects_reserved_date_column", func(t *testing.T) {
		table := NewTable()
		err := table.AddHabit("Date")
		assert.Error(t, err)
		assert.True(t, apperrors.IsUserError(err))
		assert.Empty(t, table.Habits)
	})
}

// =============================================================================
// SetCell / Cell Tests
// =============================================================================

func TestSetCell(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.AddHabit("Gym"))
	table.EnsureDay("2024-01-01")

	require.NoError(t, table.SetCell("2024-01-01", "Gym", true))
	v, ok := table.Cell("2024-01-01", "Gym")
	assert.True(t, ok)
	assert.True(t, v)

	require.NoError(t, table.SetCell("2024-01-01", "Gym", false))
	v, _ = table.Cell("2024-01-01", "Gym")
	assert.False(t, v)
}

func TestSetCellUnknownDay(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.AddHabit("Gym"))

	err := table.SetCell("2024-01-01", "Gym", true)
	assert.ErrorIs(t, err, apperrors.ErrDayNotFound)
}

func TestSetCellUnknownHabit(t *testing.T) {
	table := NewTable()
	table.EnsureDay("2024-01-01")

	err := table.SetCell("2024-01-01", "Gym", true)
	assert.ErrorIs(t, err, apperrors.ErrHabitNotFound)
}

func TestSetCellIsolation(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.AddHabit("Gym"))
	require.NoError(t, table.AddHabit("Read"))
	table.EnsureDay("2024-01-01")
	table.EnsureDay("2024-01-02")

	require.NoError(t, table.SetCell("2024-01-01", "Gym", true))

	for _, tc := range []struct {
		day, habit string
	}{
		{"2024-01-01", "Read"},
		{"2024-01-02", "Gym"},
		{"2024-01-02", "Read"},
	} {
		v, ok := table.Cell(tc.day, tc.habit)
		assert.True(t, ok)
		assert.False(t, v, "cell (%s, %s) must stay false", tc.day, tc.habit)
	}
}

func TestSetCellDuplicateDayTouchesFirstRowOnly(t *testing.T) {
	// A hand-edited store can carry duplicate dates; only the first
	// matching row may ever change.
	table := &Table{
		Habits: []string{"Gym"},
		Rows: []Row{
			{Date: "2024-01-01", Cells: map[string]bool{"Gym": false}},
			{Date: "2024-01-01", Cells: map[string]bool{"Gym": false}},
		},
	}

	require.NoError(t, table.SetCell("2024-01-01", "Gym", true))
	assert.True(t, table.Rows[0].Value("Gym"))
	assert.False(t, table.Rows[1].Value("Gym"))
}

func TestCellDefaults(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.AddHabit("Gym"))

	v, ok := table.Cell("2024-01-01", "Gym")
	assert.False(t, ok)
	assert.False(t, v)

	// Missing cell value on an existing row reads false.
	table.Rows = append(table.Rows, Row{Date: "2024-01-01"})
	v, ok = table.Cell("2024-01-01", "Gym")
	assert.True(t, ok)
	assert.False(t, v)
}

// =============================================================================
// Scenario Tests
// =============================================================================

func TestScenarioEmptyTableFirstDay(t *testing.T) {
	table := NewTable()
	assert.Equal(t, []string{"Date"}, table.Header())

	table.EnsureDay("2024-01-01")
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "2024-01-01", table.Rows[0].Date)
	assert.Empty(t, table.Habits)
}

func TestScenarioAddSecondHabit(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.AddHabit("Gym"))
	table.EnsureDay("2024-01-01")

	require.NoError(t, table.AddHabit("Read"))

	assert.Equal(t, []string{"Date", "Gym", "Read"}, table.Header())
	row := table.FindRow("2024-01-01")
	require.NotNil(t, row)
	assert.False(t, row.Value("Gym"))
	assert.False(t, row.Value("Read"))
}

// =============================================================================
// Clone Tests
// =============================================================================

func TestCloneIndependence(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.AddHabit("Gym"))
	table.EnsureDay("2024-01-01")

	clone := table.Clone()
	require.NoError(t, clone.SetCell("2024-01-01", "Gym", true))
	require.NoError(t, clone.AddHabit("Read"))

	v, _ := table.Cell("2024-01-01", "Gym")
	assert.False(t, v)
	assert.Equal(t, []string{"Gym"}, table.Habits)
}

// =============================================================================
// Date Tests
// =============================================================================

func TestDay(t *testing.T) {
	ts := time.Date(2024, 1, 5, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-05", Day(ts))
}

func TestCanonicalDay(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"canonical", "2024-01-05", "2024-01-05", true},
		{"datetime", "2024-01-05 00:00:00", "2024-01-05", true},
		{"iso_datetime", "2024-01-05T08:30:00", "2024-01-05", true},
		{"rfc3339", "2024-01-05T08:30:00Z", "2024-01-05", true},
		{"slashes", "2024/01/05", "2024-01-05", true},
		{"us_form", "01/05/2024", "2024-01-05", true},
		{"padded", "  2024-01-05  ", "2024-01-05", true},
		{"empty", "", "", false},
		{"garbage", "not-a-date", "", false},
		{"bad_month", "2024-13-05", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CanonicalDay(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
