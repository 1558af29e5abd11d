package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// ============================================================================
// REPORT — Plain-Text Summary of Detected Phases
// ============================================================================
// Render-ready output for logs and inspection tooling. Deterministic: phases
// sorted by name, fixed-width columns.
// ============================================================================

// BuildReport renders a text table of phase selections: row span, age span
// and duration per phase. Absent phases are listed as such.
func BuildReport(h *History, selections map[string]Selection) string {
	names := make([]string, 0, len(selections))
	for name := range selections {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "phase analysis: %d rows\n", h.Len())
	fmt.Fprintf(&b, "%-16s %6s %6s %6s %14s %14s %14s\n",
		"PHASE", "ROWS", "START", "END", "START AGE", "END AGE", "DURATION")

	for _, name := range names {
		sel := selections[name]
		switch {
		case sel == nil:
			fmt.Fprintf(&b, "%-16s %s\n", name, "absent")
		case len(sel) == 0:
			fmt.Fprintf(&b, "%-16s %6d\n", name, 0)
		default:
			first, last := sel.First(), sel.Last()
			a1, a2 := rowAge(h, first), rowAge(h, last)
			fmt.Fprintf(&b, "%-16s %6d %6d %6d %14.6e %14.6e %14.6e\n",
				name, len(sel), first, last, a1, a2, a2-a1)
		}
	}
	return b.String()
}

func rowAge(h *History, row int) float64 {
	if !h.HasColumn("age") {
		return math.NaN()
	}
	return h.Value(row, "age")
}
