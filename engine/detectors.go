package engine

import "math"

// ============================================================================
// PHASE DETECTORS — Single-Star Evolution
// ============================================================================
// One pure function per phase: History in, Selection out. A nil Selection
// means the phase never occurred. Detectors validate their column contract
// up front, never mutate the history, and never touch I/O.
//
// All thresholds are fixed domain conventions, not configuration.
// ============================================================================

// Detector locates one named phase on a track.
type Detector func(h *History) (Selection, error)

var detectors = map[string]Detector{
	PhaseInit:           detectInit,
	PhaseFinal:          detectFinal,
	PhaseMS:             detectMS,
	PhaseRGB:            detectRGB,
	PhaseML:             detectML,
	PhaseMLStart:        detectMLStart,
	PhaseMLEnd:          detectMLEnd,
	PhaseCE:             detectCE,
	PhaseCEStart:        detectCEStart,
	PhaseCEEnd:          detectCEEnd,
	PhaseHeIgnition:     detectHeIgnition,
	PhaseHeCoreBurning:  detectHeCoreBurning,
	PhaseHeShellBurning: detectHeShellBurning,
	PhaseSdA:            func(h *History) (Selection, error) { return detectSubdwarf(h, PhaseSdA, 15000, 20000) },
	PhaseSdB:            func(h *History) (Selection, error) { return detectSubdwarf(h, PhaseSdB, 20000, 40000) },
	PhaseSdO:            func(h *History) (Selection, error) { return detectSubdwarf(h, PhaseSdO, 40000, 0) },
	PhaseHeWD:           detectHeWD,
}

// Detect runs the detector for a phase name. Canonical names dispatch to
// their detector; anything else goes through the custom-phase resolver.
func Detect(h *History, phase string) (Selection, error) {
	if det, ok := detectors[phase]; ok {
		return det(h)
	}
	return customPhase(h, phase)
}

// ── shared scan helpers ─────────────────────────────────────────────────────

// firstIndex returns the first row satisfying pred, or -1.
func firstIndex(vals []float64, pred func(float64) bool) int {
	for i, v := range vals {
		if pred(v) {
			return i
		}
	}
	return -1
}

func maxOf(vals []float64) float64 {
	m := math.Inf(-1)
	for _, v := range vals {
		if v > m {
			m = v
		}
	}
	return m
}

// selectAgeRange returns every row whose age lies in [a1, a2]. With a
// monotonic age column the result is a contiguous range.
func selectAgeRange(h *History, a1, a2 float64) Selection {
	sel := Selection{}
	for i, a := range h.Column("age") {
		if a >= a1 && a <= a2 {
			sel = append(sel, i)
		}
	}
	return sel
}

// ── point phases ────────────────────────────────────────────────────────────

// detectInit selects the first time point, carrying the initial parameters
// of the run.
func detectInit(h *History) (Selection, error) {
	return Selection{0}, nil
}

// detectFinal selects the last time point.
func detectFinal(h *History) (Selection, error) {
	return Selection{h.Len() - 1}, nil
}

// ── hydrogen burning ────────────────────────────────────────────────────────

// detectMS locates the main sequence: core hydrogen burning, from the moment
// nuclear reactions dominate the energy output until the core hydrogen runs
// out.
//
//	start: log_LH / log_L > 0.999
//	end:   center_h1 < 1e-12, else the last row
func detectMS(h *History) (Selection, error) {
	if err := requireColumns(h, PhaseMS, "log_L", "log_LH", "center_h1", "age"); err != nil {
		return nil, err
	}

	logL := h.Column("log_L")
	logLH := h.Column("log_LH")
	age := h.Column("age")

	start := -1
	for i := range logLH {
		if logLH[i]/logL[i] > 0.999 {
			start = i
			break
		}
	}
	if start < 0 {
		// hydrogen burning never dominates
		return nil, nil
	}
	a1 := age[start]

	a2 := age[h.Len()-1]
	if end := firstIndex(h.Column("center_h1"), func(v float64) bool { return v < 1e-12 }); end >= 0 {
		a2 = age[end]
	}

	return selectAgeRange(h, a1, a2), nil
}

// detectRGB locates the red-giant branch: from hydrogen exhaustion in the
// core until either a minimum in effective temperature or a maximum in
// luminosity, whichever comes first, before central helium is depleted.
//
//	start: center_h1 < 1e-12
//	end:   (Teff == min(Teff) or log_L == max(log_L))
//	       restricted to rows with center_he4 >= center_he4(TAMS) - 0.01
func detectRGB(h *History) (Selection, error) {
	if err := requireColumns(h, PhaseRGB, "log_L", "center_h1", "center_he4", "effective_T", "age"); err != nil {
		return nil, err
	}

	age := h.Column("age")
	logL := h.Column("log_L")
	teff := h.Column("effective_T")
	he4 := h.Column("center_he4")

	start := firstIndex(h.Column("center_h1"), func(v float64) bool { return v < 1e-12 })
	if start < 0 {
		// core hydrogen never exhausted, the giant branch never starts
		return nil, nil
	}
	a1 := age[start]
	heFloor := he4[start] - 0.01

	minTeff := math.Inf(1)
	maxL := math.Inf(-1)
	for i := range age {
		if he4[i] < heFloor {
			continue
		}
		if teff[i] < minTeff {
			minTeff = teff[i]
		}
		if logL[i] > maxL {
			maxL = logL[i]
		}
	}

	a2 := a1
	for i := range age {
		if he4[i] < heFloor {
			continue
		}
		if teff[i] == minTeff || logL[i] == maxL {
			a2 = age[i]
			break
		}
	}

	return selectAgeRange(h, a1, a2), nil
}

// ── helium burning ──────────────────────────────────────────────────────────

// detectHeIgnition locates the first helium flash: the row with maximal He
// luminosity between the first moment LHe exceeds 10 Lsol and the formation
// of the carbon-oxygen core (falling back to the last row when the model
// never grows a CO core). Point phase.
func detectHeIgnition(h *History) (Selection, error) {
	if err := requireColumns(h, PhaseHeIgnition, "log_LHe", "c_core_mass", "age"); err != nil {
		return nil, err
	}

	logLHe := h.Column("log_LHe")
	age := h.Column("age")

	ign := firstIndex(logLHe, func(v float64) bool { return v > 1 })
	if ign < 0 {
		// helium never ignites
		return nil, nil
	}
	a1 := age[ign]

	a2 := age[h.Len()-1]
	if co := firstIndex(h.Column("c_core_mass"), func(v float64) bool { return v >= 0.01 }); co >= 0 {
		a2 = age[co]
	}

	peak := math.Inf(-1)
	for i := range age {
		if age[i] >= a1 && age[i] <= a2 && logLHe[i] > peak {
			peak = logLHe[i]
		}
	}

	sel := Selection{}
	for i := range age {
		if age[i] >= a1 && age[i] <= a2 && logLHe[i] == peak {
			sel = append(sel, i)
		}
	}
	return sel, nil
}

// detectHeCoreBurning locates core helium burning: from the moment the
// central conditions cross the ignition boundary curve until the CO core
// forms. Absent when helium never ignites, when the center never crosses
// the boundary, or when no CO core ever grows.
func detectHeCoreBurning(h *History) (Selection, error) {
	start, err := heCoreBurningStart(h)
	if err != nil || start < 0 {
		return nil, err
	}

	age := h.Column("age")
	ccm := h.Column("c_core_mass")
	a1 := age[start]

	sel := Selection{}
	for i := range age {
		if age[i] >= a1 && ccm[i] <= 0.01 {
			sel = append(sel, i)
		}
	}
	return sel, nil
}

// heCoreBurningStart returns the first row where the central temperature
// sits above the ignition boundary curve, or -1 when the core burning phase
// is absent.
func heCoreBurningStart(h *History) (int, error) {
	if err := requireColumns(h, PhaseHeCoreBurning,
		"log_center_T", "log_center_Rho", "log_LHe", "c_core_mass", "age"); err != nil {
		return -1, err
	}

	if firstIndex(h.Column("log_LHe"), func(v float64) bool { return v >= 1 }) < 0 {
		return -1, nil
	}

	logT := h.Column("log_center_T")
	logRho := h.Column("log_center_Rho")
	start := -1
	for i := range logT {
		if logT[i] >= IgnitionTemperature(logRho[i]) {
			start = i
			break
		}
	}
	if start < 0 {
		return -1, nil
	}

	if firstIndex(h.Column("c_core_mass"), func(v float64) bool { return v >= 0.01 }) < 0 {
		// helium ignites but the model never grows a CO core
		return -1, nil
	}
	return start, nil
}

// heCoreBurningWindow returns the age span of the core burning phase.
func heCoreBurningWindow(h *History) (a1, a2 float64, ok bool, err error) {
	start, err := heCoreBurningStart(h)
	if err != nil || start < 0 {
		return 0, 0, false, err
	}

	age := h.Column("age")
	ccm := h.Column("c_core_mass")
	a1 = age[start]

	last := -1
	for i := range age {
		if age[i] >= a1 && ccm[i] <= 0.01 {
			last = i
		}
	}
	if last < 0 {
		return 0, 0, false, nil
	}
	return a1, age[last], true, nil
}

// detectHeShellBurning locates shell helium burning: from CO core formation
// until the final drop in He luminosity, defined as LHe falling below half
// its value at shell-burning start. When that drop never happens the end
// falls back to the CO core reaching 98% of its eventual maximum, and
// failing that, the last row.
func detectHeShellBurning(h *History) (Selection, error) {
	if err := requireColumns(h, PhaseHeShellBurning, "log_LHe", "c_core_mass", "age"); err != nil {
		return nil, err
	}

	logLHe := h.Column("log_LHe")
	ccm := h.Column("c_core_mass")
	age := h.Column("age")

	if firstIndex(logLHe, func(v float64) bool { return v >= 1 }) < 0 {
		return nil, nil
	}
	start := firstIndex(ccm, func(v float64) bool { return v >= 0.01 })
	if start < 0 {
		// no core burning, so no shell burning either
		return nil, nil
	}
	a1 := age[start]

	var lheStart float64
	for i := range age {
		if age[i] == a1 {
			lheStart = logLHe[i]
			break
		}
	}

	a2 := math.NaN()
	for i := range age {
		if age[i] > a1 && logLHe[i] < lheStart/2 {
			a2 = age[i]
			break
		}
	}
	if math.IsNaN(a2) {
		ccmFinal := 0.98 * maxOf(ccm)
		if co := firstIndex(ccm, func(v float64) bool { return v >= ccmFinal }); co >= 0 {
			a2 = age[co]
		} else {
			a2 = age[h.Len()-1]
		}
	}

	return selectAgeRange(h, a1, a2), nil
}
