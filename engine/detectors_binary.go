package engine

import (
	"math"
	"strings"
)

// ============================================================================
// PHASE DETECTORS — Binary Interaction, Compact Remnants, Custom Phases
// ============================================================================

// ── spectroscopic subdwarf bands ────────────────────────────────────────────

// detectSubdwarf locates a core-helium-burning window whose effective
// temperature matches one of the spectroscopic subdwarf classes. The band is
// [lo, hi) Kelvin; hi == 0 leaves the band open-ended.
//
// Both conditions must hold: the time-weighted average temperature over the
// whole window lies in the band, and individual rows are kept only when
// their own temperature does. Requires the core burning phase to exist.
func detectSubdwarf(h *History, phase string, lo, hi float64) (Selection, error) {
	if err := requireColumns(h, phase,
		"log_center_T", "log_center_Rho", "log_LHe", "c_core_mass", "log_Teff", "age"); err != nil {
		return nil, err
	}

	a1, a2, ok, err := heCoreBurningWindow(h)
	if err != nil || !ok {
		return nil, err
	}

	age := h.Column("age")
	logTeff := h.Column("log_Teff")

	// Window bounds are exclusive: the boundary rows belong to ignition and
	// CO core formation, not to the quiescent burning that sets the class.
	window := []int{}
	for i := range age {
		if age[i] > a1 && age[i] < a2 {
			window = append(window, i)
		}
	}

	avgLogTeff, err := avgFunc(h, "log_Teff", window)
	if err != nil {
		return nil, err
	}
	teff := math.Pow(10, avgLogTeff)

	// An empty window averages to NaN, which lies in no band.
	if math.IsNaN(teff) || teff < lo {
		return nil, nil
	}
	if hi > 0 && teff >= hi {
		return nil, nil
	}

	sel := Selection{}
	for _, i := range window {
		t := math.Pow(10, logTeff[i])
		if t >= lo && (hi <= 0 || t < hi) {
			sel = append(sel, i)
		}
	}
	return sel, nil
}

// ── white dwarf cooling ─────────────────────────────────────────────────────

// detectHeWD locates the He white dwarf phase: the star sits on the WD
// cooling track while still carrying a helium core. The track requires a
// surface gravity of at least log g = 7 and no sign of helium burning.
//
//	start: (Teff < 10^4 K and log g > 7) or log g >= 7.5
//	end:   open-ended to the last row
func detectHeWD(h *History) (Selection, error) {
	if err := requireColumns(h, PhaseHeWD, "log_LHe", "c_core_mass", "log_Teff", "log_g", "age"); err != nil {
		return nil, err
	}

	logg := h.Column("log_g")
	if maxOf(logg) < 7.0 {
		// no final WD yet
		return nil, nil
	}
	if maxOf(h.Column("c_core_mass")) > 0.01 || maxOf(h.Column("log_LHe")) > 1 {
		// sign of He burning
		return nil, nil
	}

	logTeff := h.Column("log_Teff")
	age := h.Column("age")

	start := -1
	for i := range age {
		if (logTeff[i] < 4 && logg[i] > 7) || logg[i] >= 7.5 {
			start = i
			break
		}
	}
	if start < 0 {
		// cooling track never reached
		return nil, nil
	}

	sel := Selection{}
	for i := range age {
		if age[i] > age[start] {
			sel = append(sel, i)
		}
	}
	return sel, nil
}

// ── mass loss ───────────────────────────────────────────────────────────────

// mlWindow returns the age span of the first mass-loss episode: from the
// mass-loss rate first reaching lg_mstar_dot_1 >= -10 until it first dips
// back below -10, or the end of the track.
func mlWindow(h *History) (a1, a2 float64, ok bool, err error) {
	if err := requireColumns(h, PhaseML, "lg_mstar_dot_1", "age"); err != nil {
		return 0, 0, false, err
	}

	rate := h.Column("lg_mstar_dot_1")
	age := h.Column("age")

	start := firstIndex(rate, func(v float64) bool { return v >= -10 })
	if start < 0 {
		return 0, 0, false, nil
	}
	a1 = age[start]

	a2 = age[h.Len()-1]
	for i := range age {
		if age[i] > a1 && rate[i] < -10 {
			a2 = age[i]
			break
		}
	}
	return a1, a2, true, nil
}

// detectML selects the first mass-loss episode. Later episodes are not
// marked; only the first one is.
func detectML(h *History) (Selection, error) {
	a1, a2, ok, err := mlWindow(h)
	if err != nil || !ok {
		return nil, err
	}
	return selectAgeRange(h, a1, a2), nil
}

// detectMLStart selects the single row where the first mass-loss episode
// begins.
func detectMLStart(h *History) (Selection, error) {
	a1, _, ok, err := mlWindow(h)
	if err != nil || !ok {
		return nil, err
	}
	age := h.Column("age")
	for i := range age {
		if age[i] >= a1 {
			return Selection{i}, nil
		}
	}
	return nil, nil
}

// detectMLEnd selects the single row where the first mass-loss episode ends.
func detectMLEnd(h *History) (Selection, error) {
	_, a2, ok, err := mlWindow(h)
	if err != nil || !ok {
		return nil, err
	}
	age := h.Column("age")
	last := -1
	for i := range age {
		if age[i] <= a2 {
			last = i
		}
	}
	return Selection{last}, nil
}

// ── common envelope ─────────────────────────────────────────────────────────

// detectCE selects every row flagged by the simulation's common-envelope
// flag column. Absent when the flag is never set.
func detectCE(h *History) (Selection, error) {
	if err := requireColumns(h, PhaseCE, "CE_phase"); err != nil {
		return nil, err
	}

	flag := h.Column("CE_phase")
	if firstIndex(flag, func(v float64) bool { return v != 0 }) < 0 {
		return nil, nil
	}

	sel := Selection{}
	for i, v := range flag {
		if v == 1 {
			sel = append(sel, i)
		}
	}
	return sel, nil
}

// detectCEStart selects the first flagged common-envelope row.
func detectCEStart(h *History) (Selection, error) {
	sel, err := detectCE(h)
	if err != nil || sel == nil {
		return nil, err
	}
	return Selection{sel.First()}, nil
}

// detectCEEnd selects the last flagged common-envelope row.
func detectCEEnd(h *History) (Selection, error) {
	sel, err := detectCE(h)
	if err != nil || sel == nil {
		return nil, err
	}
	return Selection{sel.Last()}, nil
}

// ── custom compound phases ──────────────────────────────────────────────────

// customPhase resolves a phase of the form <column>_<aggfunc>, selecting the
// row(s) where the column equals the aggregate of that column over the whole
// history. lg_mstar_dot_1_max, for instance, marks the point of strongest
// mass loss. Absent when either the column or the function is unrecognized.
//
// The split is on the last underscore, so a column whose own name ends in an
// aggregate token cannot be addressed here: col_max_min reads as min over
// col_max, and col_max alone is never a valid base.
func customPhase(h *History, phase string) (Selection, error) {
	cut := strings.LastIndex(phase, "_")
	if cut < 0 {
		return nil, nil
	}
	column, fn := phase[:cut], phase[cut+1:]

	if !h.HasColumn(column) || !IsFunction(fn) {
		return nil, nil
	}

	target, err := Reduce(h, column, nil, fn)
	if err != nil {
		return nil, err
	}

	sel := Selection{}
	for i, v := range h.Column(column) {
		if v == target {
			sel = append(sel, i)
		}
	}
	return sel, nil
}
