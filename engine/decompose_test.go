package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecomposeParameter(t *testing.T) {
	cases := []struct {
		par  string
		want Parameter
	}{
		{"Teff", Parameter{Name: "Teff", Function: "avg"}},
		{"M1__init", Parameter{Name: "M1", Phase: "init", Function: "avg"}},
		{"max__RL", Parameter{Name: "RL", Function: "max"}},
		// a trailing token naming a function is the function, not a phase
		{"Teff__max", Parameter{Name: "Teff", Function: "max"}},
		{"rl_1__diff", Parameter{Name: "rl_1", Function: "diff"}},
		// an unrecognized leading token is a column, the second a phase
		{"duration__HeCoreBurning", Parameter{Name: "duration", Phase: "HeCoreBurning", Function: "avg"}},
		{"max__Teff__ML", Parameter{Name: "Teff", Phase: "ML", Function: "max"}},
		{"rate__star_1_mass__ML", Parameter{Name: "star_1_mass", Phase: "ML", Function: "rate"}},
		{"diff__age__HeCoreBurning", Parameter{Name: "age", Phase: "HeCoreBurning", Function: "diff"}},
	}

	for _, c := range cases {
		require.Equal(t, c.want, DecomposeParameter(c.par), c.par)
	}
}

// Decomposition does not validate: an unknown function in the three-part
// form passes through and fails at lookup time.
func TestDecomposeParameterNoValidation(t *testing.T) {
	p := DecomposeParameter("median__Teff__ML")
	require.Equal(t, Parameter{Name: "Teff", Phase: "ML", Function: "median"}, p)
	require.False(t, IsFunction(p.Function))
}
