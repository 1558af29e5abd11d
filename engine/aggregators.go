package engine

import (
	"fmt"
	"math"
)

// ============================================================================
// AGGREGATORS — Named Reducers over a Column Selection
// ============================================================================
// Reduce applies one of the five known aggregate functions to a column,
// restricted to a row selection. A nil selection means the whole history.
//
// Degenerate inputs deliberately produce non-finite values instead of
// errors: an empty selection reduces to NaN, and rate over a zero age span
// divides through to ±Inf or NaN. Downstream consumers use non-finite
// summary values as a signal of pathological tracks.
// ============================================================================

// AggregateFunc reduces a column over a set of rows to a scalar.
type AggregateFunc func(h *History, column string, rows []int) (float64, error)

var knownFunctions = map[string]AggregateFunc{
	"min":  minFunc,
	"max":  maxFunc,
	"avg":  avgFunc,
	"diff": diffFunc,
	"rate": rateFunc,
}

// Functions returns the names of the known aggregate functions.
func Functions() []string {
	return []string{"min", "max", "avg", "diff", "rate"}
}

// IsFunction reports whether name is a known aggregate function.
func IsFunction(name string) bool {
	_, ok := knownFunctions[name]
	return ok
}

// Reduce applies the named aggregate function to a column over sel.
// A nil sel reduces over the entire history. Unknown function names and
// missing columns are errors.
func Reduce(h *History, column string, sel Selection, name string) (float64, error) {
	fn, ok := knownFunctions[name]
	if !ok {
		return 0, fmt.Errorf("unknown aggregate function %q", name)
	}
	if !h.HasColumn(column) {
		return 0, fmt.Errorf("history has no column %q", column)
	}
	return fn(h, column, resolveRows(h, sel))
}

// resolveRows expands a nil selection to every row.
func resolveRows(h *History, sel Selection) []int {
	if sel != nil {
		return sel
	}
	rows := make([]int, h.Len())
	for i := range rows {
		rows[i] = i
	}
	return rows
}

func minFunc(h *History, column string, rows []int) (float64, error) {
	vals := h.Column(column)
	m := math.NaN()
	for _, i := range rows {
		if math.IsNaN(m) || vals[i] < m {
			m = vals[i]
		}
	}
	return m, nil
}

func maxFunc(h *History, column string, rows []int) (float64, error) {
	vals := h.Column(column)
	m := math.NaN()
	for _, i := range rows {
		if math.IsNaN(m) || vals[i] > m {
			m = vals[i]
		}
	}
	return m, nil
}

// avgFunc is the time-weighted average: each row weighs 10^log_dt, so phases
// are weighted by elapsed time, not by sample count.
func avgFunc(h *History, column string, rows []int) (float64, error) {
	if !h.HasColumn("log_dt") {
		return 0, fmt.Errorf("avg aggregate needs the log_dt column")
	}
	vals := h.Column(column)
	logDt := h.Column("log_dt")

	var sum, wsum float64
	for _, i := range rows {
		w := math.Pow(10, logDt[i])
		sum += w * vals[i]
		wsum += w
	}
	return sum / wsum, nil
}

func diffFunc(h *History, column string, rows []int) (float64, error) {
	if len(rows) == 0 {
		return math.NaN(), nil
	}
	vals := h.Column(column)
	return vals[rows[len(rows)-1]] - vals[rows[0]], nil
}

// rateFunc is diff(column)/diff(age). A zero age span is not guarded and
// divides through to a non-finite value.
func rateFunc(h *History, column string, rows []int) (float64, error) {
	if !h.HasColumn("age") {
		return 0, fmt.Errorf("rate aggregate needs the age column")
	}
	if len(rows) == 0 {
		return math.NaN(), nil
	}
	vals := h.Column(column)
	age := h.Column("age")
	first, last := rows[0], rows[len(rows)-1]
	return (vals[last] - vals[first]) / (age[last] - age[first]), nil
}
