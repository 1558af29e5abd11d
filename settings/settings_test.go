package settings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/evotrace-org/evotrace/engine"
)

func TestLoad(t *testing.T) {
	s, err := Load(strings.NewReader(`
phases:
  - MS
  - He-WD
parameters:
  - star_1_mass__init
  - max__effective_T__ML
`))
	require.NoError(t, err)
	require.Equal(t, []string{"MS", "He-WD"}, s.Phases)
	require.Equal(t, []string{"star_1_mass__init", "max__effective_T__ML"}, s.Parameters)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader("phasez:\n  - MS\n"))
	require.ErrorContains(t, err, "failed to parse settings")
}

func TestRequests(t *testing.T) {
	s := &Settings{
		Phases:     []string{"MS", "ML"},
		Parameters: []string{"star_1_mass__init", "max__effective_T__ML", "max__rl_1"},
	}

	// explicit phases first, then parameter-implied ones, deduplicated
	require.Equal(t, []string{"MS", "ML", "init"}, s.Requests())
}

func TestDefaultsCoverTheirOwnParameters(t *testing.T) {
	s := Defaults()
	requests := s.Requests()

	require.Contains(t, requests, engine.PhaseHeCoreBurning)
	require.Contains(t, requests, engine.PhaseInit)
	require.Contains(t, requests, engine.PhaseFinal)

	// every compound parameter decomposes to a known aggregate function
	for _, par := range s.Parameters {
		p := engine.DecomposeParameter(par)
		require.True(t, engine.IsFunction(p.Function), par)
	}
}
