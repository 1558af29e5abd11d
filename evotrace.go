// Package evotrace analyzes simulated stellar-evolution time series.
//
// Usage:
//
//	import (
//	    "github.com/evotrace-org/evotrace/engine"
//	    "github.com/evotrace-org/evotrace/helpers"
//	)
//
//	history, err := helpers.ParseCSV(raw)
//	selections, err := engine.EvaluatePhases(history,
//	    []string{"MS", "RGB", "HeCoreBurning", "ML"})
//	row, err := engine.ExtractParameters(history,
//	    []string{"star_1_mass__init", "max__effective_T__ML"})
//
// The engine takes one evolutionary track (a column-oriented history with
// named numeric columns) and locates the physically meaningful phases on it:
// main sequence, red-giant branch, helium ignition and burning, mass-loss
// and common-envelope episodes, subdwarf windows and white-dwarf cooling.
// Per-phase row selections feed an aggregate registry (min, max, time-weighted
// avg, diff, rate) addressed through compound parameter names, producing one
// flat row of summary statistics per track.
//
// Reading raw simulation logs and persisting results are handled by
// consumers — the engine only sees plain tabular data. All computation is
// local and deterministic.
package evotrace
