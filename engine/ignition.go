package engine

import (
	_ "embed"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// ============================================================================
// IGNITION BOUNDARY CURVE — log T(log rho) above which He fusion sustains
// ============================================================================
// Bundled reference table, two whitespace-separated columns: log central
// density, log ignition temperature. Parsed once, immutable afterwards —
// safe for concurrent reads. Lookups interpolate piecewise-linearly and
// extrapolate linearly beyond both ends of the table.
// ============================================================================

//go:embed helium_burn.data
var heliumBurnData string

var (
	ignitionOnce sync.Once
	ignitionRho  []float64
	ignitionT    []float64
)

func loadIgnitionCurve() {
	for _, line := range strings.Split(heliumBurnData, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		rho, err1 := strconv.ParseFloat(fields[0], 64)
		t, err2 := strconv.ParseFloat(fields[1], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		ignitionRho = append(ignitionRho, rho)
		ignitionT = append(ignitionT, t)
	}
}

// IgnitionTemperature returns the log central temperature above which helium
// fusion self-sustains at the given log central density.
func IgnitionTemperature(logRho float64) float64 {
	ignitionOnce.Do(loadIgnitionCurve)

	n := len(ignitionRho)
	if n == 1 {
		return ignitionT[0]
	}

	// Segment index such that the query sits in [rho[i], rho[i+1]];
	// out-of-range queries extrapolate along the end segments.
	i := sort.SearchFloat64s(ignitionRho, logRho) - 1
	if i < 0 {
		i = 0
	}
	if i > n-2 {
		i = n - 2
	}

	frac := (logRho - ignitionRho[i]) / (ignitionRho[i+1] - ignitionRho[i])
	return ignitionT[i] + frac*(ignitionT[i+1]-ignitionT[i])
}
