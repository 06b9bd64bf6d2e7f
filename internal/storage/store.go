// Package storage provides the CSV-backed habit store for Habitgrid.
package storage

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"

	"github.com/manav03panchal/habitgrid/internal/errors"
	"github.com/manav03panchal/habitgrid/internal/logging"
	"github.com/manav03panchal/habitgrid/internal/model"
)

const (
	// AppName is the application name used for data directories.
	AppName = "habitgrid"
	// StoreFileName is the name of the backing store file.
	StoreFileName = "habits.csv"
)

// Store reads and writes the habit table as a comma-delimited file with a
// header row starting with Date. There is no locking: simultaneous writers
// race and the last save wins.
type Store struct {
	path string
}

// Options configures the store.
type Options struct {
	// Path is the store file path. Empty string uses DefaultPath.
	Path string
}

// DefaultPath returns the default store path following the XDG spec.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, AppName, StoreFileName)
}

// New creates a store for the given options.
func New(opts Options) *Store {
	path := opts.Path
	if path == "" {
		path = DefaultPath()
	}
	return &Store{path: path}
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the habit table from the backing store.
//
// A missing store is created containing only the Date header and an empty
// table is returned. An unreadable or corrupt store is reported as
// ErrStoreUnreadable alongside a safe empty table, never a partially
// parsed one; the caller decides whether to warn. Stored dates are
// normalized to YYYY-MM-DD and non-boolean cells coerce to false.
func (s *Store) Load() (*model.Table, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		table := model.NewTable()
		if saveErr := s.Save(table); saveErr != nil {
			return table, saveErr
		}
		logging.With("path", s.path).Debug("created empty habit store")
		return table, nil
	}
	if err != nil {
		return model.NewTable(), unreadable("open", err)
	}

	// A present-but-empty file is treated like a missing one.
	if len(bytes.TrimSpace(data)) == 0 {
		table := model.NewTable()
		if saveErr := s.Save(table); saveErr != nil {
			return table, saveErr
		}
		return table, nil
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // tolerate ragged rows, missing cells read false
	records, err := reader.ReadAll()
	if err != nil {
		return model.NewTable(), unreadable("parse", err)
	}
	if len(records) == 0 {
		return model.NewTable(), nil
	}

	table, err := parseRecords(records)
	if err != nil {
		return model.NewTable(), err
	}
	return table, nil
}

// Save serializes the table to the backing store, overwriting prior
// contents. On failure the in-memory table remains valid; the error is
// ErrStoreUnwritable with the cause attached.
func (s *Store) Save(table *model.Table) error {
	if err := EnsureDirectory(filepath.Dir(s.path)); err != nil {
		return unwritable(err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(table.Header()); err != nil {
		return unwritable(err)
	}
	for _, row := range table.Rows {
		record := make([]string, 0, len(table.Habits)+1)
		record = append(record, row.Date)
		for _, habit := range table.Habits {
			record = append(record, strconv.FormatBool(row.Value(habit)))
		}
		if err := w.Write(record); err != nil {
			return unwritable(err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return unwritable(err)
	}

	if err := SafeWrite(s.path, buf.Bytes(), 0600); err != nil {
		return unwritable(err)
	}
	return nil
}

// parseRecords builds a table from raw CSV records, validating the header
// invariants: first column Date, habit names non-empty and unique.
func parseRecords(records [][]string) (*model.Table, error) {
	header := records[0]
	if len(header) == 0 || strings.TrimSpace(header[0]) != model.DateColumn {
		return nil, unreadable("parse",
			errors.New("header must start with the Date column"))
	}

	table := model.NewTable()
	seen := make(map[string]bool, len(header))
	for _, name := range header[1:] {
		name = strings.TrimSpace(name)
		if name == "" || name == model.DateColumn || seen[name] {
			return nil, unreadable("parse",
				errors.New("habit columns must be unique, non-empty, and not 'Date'"))
		}
		seen[name] = true
		table.Habits = append(table.Habits, name)
	}

	for _, record := range records[1:] {
		if len(record) == 0 {
			continue
		}
		day, ok := model.CanonicalDay(record[0])
		if !ok {
			return nil, unreadable("parse",
				errors.New("unparseable date value '"+record[0]+"'"))
		}
		cells := make(map[string]bool, len(table.Habits))
		for i, habit := range table.Habits {
			cells[habit] = parseCell(record, i+1)
		}
		table.Rows = append(table.Rows, model.Row{Date: day, Cells: cells})
	}
	return table, nil
}

// parseCell reads a boolean cell, coercing anything unrecognized to false.
func parseCell(record []string, idx int) bool {
	if idx >= len(record) {
		return false
	}
	v, err := strconv.ParseBool(strings.TrimSpace(record[idx]))
	if err != nil {
		return false
	}
	return v
}

func unreadable(op string, cause error) error {
	return errors.NewSystemErrorWithOp(op,
		"habit store unreadable: "+cause.Error(), errors.ErrStoreUnreadable)
}

func unwritable(cause error) error {
	return errors.NewSystemErrorWithOp("save",
		"habit store unwritable: "+cause.Error(), errors.ErrStoreUnwritable)
}
