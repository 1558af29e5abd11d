package engine

import (
	"fmt"
	"sort"
)

// ============================================================================
// HISTORY — Column-Oriented Evolutionary Track
// ============================================================================
// One track = named float64 columns of equal length, chronological row order.
// The engine never mutates a History; detectors and aggregates only read.
// Column() hands out the backing slice — treat it as read-only.
// ============================================================================

// History is the full time-ordered table of simulation output for one run.
type History struct {
	columns map[string][]float64
	names   []string
	rows    int
}

// NewHistory builds a History from named columns. All columns must have the
// same, non-zero length. If an "age" column is present it must be
// non-decreasing — detectors depend on chronological row order.
func NewHistory(columns map[string][]float64) (*History, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("history needs at least one column")
	}

	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := len(columns[names[0]])
	if rows == 0 {
		return nil, fmt.Errorf("history needs at least one row")
	}
	for _, name := range names {
		if len(columns[name]) != rows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d",
				name, len(columns[name]), rows)
		}
	}

	if age, ok := columns["age"]; ok {
		for i := 1; i < rows; i++ {
			if age[i] < age[i-1] {
				return nil, fmt.Errorf("age column decreases at row %d (%g < %g)",
					i, age[i], age[i-1])
			}
		}
	}

	return &History{columns: columns, names: names, rows: rows}, nil
}

// Len returns the number of rows.
func (h *History) Len() int { return h.rows }

// HasColumn reports whether a named column exists.
func (h *History) HasColumn(name string) bool {
	_, ok := h.columns[name]
	return ok
}

// Columns returns the column names in sorted order.
func (h *History) Columns() []string { return h.names }

// Column returns the backing slice for a named column, or nil if the column
// does not exist. Callers must not modify the returned slice.
func (h *History) Column(name string) []float64 { return h.columns[name] }

// Value returns a single cell.
func (h *History) Value(row int, name string) float64 {
	return h.columns[name][row]
}
