package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"age":          "age",
		"star_age":     "age",
		" star_age ":   "age",
		"Teff":         "effective_T",
		"logTeff":      "log_Teff",
		"logg":         "log_g",
		"RL":           "rl_1",
		"period":       "period_days",
		"extra column": "extra_column",
		"wind_mdot":    "wind_mdot",
	}
	for header, want := range cases {
		require.Equal(t, want, Normalize(header), header)
	}
}

func TestDiscover(t *testing.T) {
	cfg := Discover([]string{"star_age", "Teff", "log_LHe", "wind_mdot"})

	require.Equal(t, []string{"age", "effective_T", "log_LHe"}, cfg.Keys())
	require.Equal(t, []string{"wind_mdot"}, cfg.Unknown)
}

func TestLookup(t *testing.T) {
	meta, ok := Lookup("log_center_Rho")
	require.True(t, ok)
	require.True(t, meta.LogScale)
	require.Equal(t, "g/cm^3", meta.Unit)

	_, ok = Lookup("wind_mdot")
	require.False(t, ok)
}

func TestCatalogIsACopy(t *testing.T) {
	cat := Catalog()
	require.NotEmpty(t, cat)

	cat[0].Key = "mutated"
	again := Catalog()
	require.NotEqual(t, "mutated", again[0].Key)
}
