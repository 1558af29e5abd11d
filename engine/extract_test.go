package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractParameters(t *testing.T) {
	h := heliumTrack(t)

	row, err := ExtractParameters(h, []string{
		"age__final",
		"max__log_LHe",
		"log_LHe__max",
		"max__log_LHe__HeIgnition",
		"diff__age__HeCoreBurning",
		"avg__log_Teff__sdB",
	})
	require.NoError(t, err)
	require.Len(t, row, 6)

	require.Equal(t, 11.0, row["age__final"])
	require.Equal(t, 2.5, row["max__log_LHe"])
	require.Equal(t, 2.5, row["log_LHe__max"])
	require.Equal(t, 2.5, row["max__log_LHe__HeIgnition"])
	require.Equal(t, 4.0, row["diff__age__HeCoreBurning"])
	require.InDelta(t, 4.48, row["avg__log_Teff__sdB"], 1e-12)
}

// An absent phase yields NaN — no statistics available — while malformed
// input is an error.
func TestExtractParametersAbsentPhaseIsNaN(t *testing.T) {
	h := heliumTrack(t)

	row, err := ExtractParameters(h, []string{"max__log_LHe__CE"})
	require.NoError(t, err)
	require.True(t, math.IsNaN(row["max__log_LHe__CE"]))
}

func TestExtractParametersUnknownColumn(t *testing.T) {
	h := heliumTrack(t)

	_, err := ExtractParameters(h, []string{"max__star_3_mass"})
	require.ErrorContains(t, err, `no column "star_3_mass"`)
}

func TestExtractParametersUnknownFunction(t *testing.T) {
	h := heliumTrack(t)

	_, err := ExtractParameters(h, []string{"median__age__final"})
	require.ErrorContains(t, err, "unknown aggregate function")
}

func TestExtractParametersMissingDetectorColumns(t *testing.T) {
	h := heliumTrack(t)

	_, err := ExtractParameters(h, []string{"max__age__ML"})
	require.ErrorContains(t, err, "phase ML requires")
}
