package engine

// ============================================================================
// EVALUATOR — Batch Phase Evaluation
// ============================================================================
// Entry point: EvaluatePhases(history, names, opts...)
//
// Each requested phase is computed independently against the same immutable
// history. Detector dependencies (sdB needing HeCoreBurning, MLstart needing
// ML) are recomputed per call rather than cached — histories are small and
// evaluation is not on a hot path.
//
// A nil Selection in the result means the phase never occurred; that is a
// physical outcome, not a fault. Malformed input (missing required columns,
// unknown aggregate in a custom phase) aborts the whole evaluation instead.
// ============================================================================

// EvaluatePhases computes the row selection of every requested phase.
// Duplicate names collapse to one computation, empty-string entries are
// dropped, and unrecognized names fall through to the custom-phase resolver.
func EvaluatePhases(h *History, phases []string, opts ...Option) (map[string]Selection, error) {
	cfg := applyOptions(opts)

	result := make(map[string]Selection, len(phases))
	for _, phase := range phases {
		if phase == "" {
			continue
		}
		if _, done := result[phase]; done {
			continue
		}

		sel, err := Detect(h, phase)
		if err != nil {
			return nil, err
		}
		result[phase] = sel
	}

	cfg.logger.Debug("phases evaluated",
		"rows", h.Len(), "requested", len(phases), "computed", len(result))

	return result, nil
}
