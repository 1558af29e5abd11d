package engine

import "strings"

// ============================================================================
// PARAMETER DECOMPOSITION — The Compound-Parameter Mini-Language
// ============================================================================
// A compound parameter packs (aggregate function, column, phase) into one
// string, separated by double underscores:
//
//	M1__init                 -> avg(M1) over phase init
//	max__rl_1                -> max(rl_1) over the whole history
//	rl_1__max                -> max(rl_1) over the whole history
//	duration__HeCoreBurning  -> avg(duration) over phase HeCoreBurning
//	max__effective_T__ML     -> max(effective_T) over phase ML
//
// The leading token is treated as the aggregate function when it names one.
// In the two-part form a trailing token naming a function is the function;
// any other second token is the phase. No validation happens here — unknown
// functions or phases surface as lookup failures downstream.
// ============================================================================

// DecomposeParameter splits a compound parameter name into its column name,
// phase, and aggregate function. Phase defaults to empty (whole history),
// the function defaults to avg.
func DecomposeParameter(par string) Parameter {
	parts := strings.Split(par, "__")

	p := Parameter{Function: "avg"}

	switch len(parts) {
	case 1:
		p.Name = parts[0]
	case 2:
		switch {
		case IsFunction(parts[0]):
			p.Function = parts[0]
			p.Name = parts[1]
		case IsFunction(parts[1]):
			p.Name = parts[0]
			p.Function = parts[1]
		default:
			p.Name = parts[0]
			p.Phase = parts[1]
		}
	default:
		p.Function = parts[0]
		p.Name = parts[1]
		p.Phase = parts[2]
	}

	return p
}
