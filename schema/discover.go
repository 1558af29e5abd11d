package schema

import "strings"

// ============================================================================
// DISCOVERY — Header Normalization and Table-Shape Recognition
// ============================================================================

// aliases maps header variants produced by different converters onto
// canonical catalog keys.
var aliases = map[string]string{
	"star_age":       "age",
	"Teff":           "effective_T",
	"logTeff":        "log_Teff",
	"logL":           "log_L",
	"logg":           "log_g",
	"center_T":       "log_center_T",
	"center_Rho":     "log_center_Rho",
	"lg_mstar_dot":   "lg_mstar_dot_1",
	"period":         "period_days",
	"RL":             "rl_1",
	"RL_1":           "rl_1",
}

// Normalize maps a raw header onto its canonical column key. Unrecognized
// headers are kept, trimmed with spaces collapsed to underscores, so custom
// phases and parameters can still address them.
func Normalize(header string) string {
	key := strings.TrimSpace(header)
	if alias, ok := aliases[key]; ok {
		return alias
	}
	return strings.ReplaceAll(key, " ", "_")
}

// Discover classifies a header row against the catalog: recognized columns
// get their metadata, the rest are reported as unknown.
func Discover(headers []string) Config {
	var cfg Config
	for _, header := range headers {
		key := Normalize(header)
		if meta, ok := Lookup(key); ok {
			cfg.Columns = append(cfg.Columns, meta)
		} else {
			cfg.Unknown = append(cfg.Unknown, key)
		}
	}
	return cfg
}
