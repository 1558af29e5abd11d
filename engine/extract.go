package engine

import "math"

// ============================================================================
// EXTRACTION — Compound Parameters to a Flat Results Row
// ============================================================================
// The boundary contract with downstream summarization: one map of scalar
// statistics per track, keyed by the original compound parameter strings.
// ============================================================================

// ExtractParameters decomposes each compound parameter, resolves its phase
// selection, reduces the column over it, and flattens everything into one
// results row.
//
// A phase that never occurred yields NaN for its parameters — no statistics
// available. Missing columns, missing required detector inputs and unknown
// aggregate functions are errors and abort the extraction.
func ExtractParameters(h *History, parameters []string, opts ...Option) (map[string]float64, error) {
	cfg := applyOptions(opts)

	row := make(map[string]float64, len(parameters))
	for _, par := range parameters {
		p := DecomposeParameter(par)

		var sel Selection
		if p.Phase != "" {
			phaseSel, err := Detect(h, p.Phase)
			if err != nil {
				return nil, err
			}
			if phaseSel == nil {
				row[par] = math.NaN()
				continue
			}
			sel = phaseSel
		}

		// nil sel = reduce over the whole history
		value, err := Reduce(h, p.Name, sel, p.Function)
		if err != nil {
			return nil, err
		}
		row[par] = value
	}

	cfg.logger.Debug("parameters extracted", "rows", h.Len(), "parameters", len(row))

	return row, nil
}
