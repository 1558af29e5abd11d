package engine

import (
	"fmt"
	"strings"
)

// ============================================================================
// ENGINE TYPES — Phase Analysis over Evolutionary Tracks
// ============================================================================
// A History is one evolutionary track. Detectors turn a History into
// Selections (row-index lists). The aggregate registry reduces a column over
// a Selection to a scalar. Compound parameter names tie the two together.
// ============================================================================

// Canonical phase names. Every name maps to one detector; anything outside
// this set falls through to the custom-phase resolver.
const (
	PhaseInit           = "init"
	PhaseFinal          = "final"
	PhaseMS             = "MS"
	PhaseRGB            = "RGB"
	PhaseML             = "ML"
	PhaseMLStart        = "MLstart"
	PhaseMLEnd          = "MLend"
	PhaseCE             = "CE"
	PhaseCEStart        = "CEstart"
	PhaseCEEnd          = "CEend"
	PhaseHeIgnition     = "HeIgnition"
	PhaseHeCoreBurning  = "HeCoreBurning"
	PhaseHeShellBurning = "HeShellBurning"
	PhaseSdA            = "sdA"
	PhaseSdB            = "sdB"
	PhaseSdO            = "sdO"
	PhaseHeWD           = "He-WD"
)

// Phases lists every canonical phase name in evaluation-independent order.
func Phases() []string {
	return []string{
		PhaseInit, PhaseFinal,
		PhaseMS, PhaseRGB,
		PhaseML, PhaseMLStart, PhaseMLEnd,
		PhaseCE, PhaseCEStart, PhaseCEEnd,
		PhaseHeIgnition, PhaseHeCoreBurning, PhaseHeShellBurning,
		PhaseSdA, PhaseSdB, PhaseSdO,
		PhaseHeWD,
	}
}

// ============================================================================
// SELECTION — Row indices belonging to a phase
// ============================================================================

// Selection is an ordered list of row indices into a History.
//
// A nil Selection means the phase never occurred on this track (Absent).
// A non-nil empty Selection means the phase exists but no individual row
// matched — this can legitimately happen on the subdwarf bands, where the
// time-averaged temperature sits in a band that no single row occupies.
type Selection []int

// Present reports whether the phase occurred at all.
func (s Selection) Present() bool { return s != nil }

// First returns the first row index. Call only on a non-empty selection.
func (s Selection) First() int { return s[0] }

// Last returns the last row index. Call only on a non-empty selection.
func (s Selection) Last() int { return s[len(s)-1] }

// ============================================================================
// PARAMETER — Decomposed compound parameter name
// ============================================================================

// Parameter is a decomposed compound parameter: which column to reduce, over
// which phase (empty = whole history), with which aggregate function.
type Parameter struct {
	Name     string
	Phase    string
	Function string
}

// ============================================================================
// ERRORS
// ============================================================================

// MissingColumnsError reports that a detector's required columns are not all
// present in the history. It names the phase and the exact columns missing.
type MissingColumnsError struct {
	Phase    string
	Required []string
	Missing  []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("phase %s requires columns [%s], missing [%s]",
		e.Phase, strings.Join(e.Required, ", "), strings.Join(e.Missing, ", "))
}

// requireColumns validates a detector's column contract against a history.
func requireColumns(h *History, phase string, required ...string) error {
	var missing []string
	for _, col := range required {
		if !h.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnsError{Phase: phase, Required: required, Missing: missing}
	}
	return nil
}
