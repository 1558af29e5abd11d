package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestHistory builds a History from literal columns, failing the test on
// structural problems.
func newTestHistory(t *testing.T, columns map[string][]float64) *History {
	t.Helper()
	h, err := NewHistory(columns)
	require.NoError(t, err)
	return h
}

// ages returns 0, 1, ..., n-1 as a float column.
func ages(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// constant returns a column of n copies of v.
func constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
