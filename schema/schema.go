package schema

// ============================================================================
// SCHEMA — Catalog of Simulation-History Columns
// ============================================================================
// The engine addresses columns by canonical name. This package carries the
// catalog of known columns (name, unit, scale) and normalizes the header
// variants that simulation logs and converters produce.
// ============================================================================

// ColumnMeta describes one history column.
type ColumnMeta struct {
	Key         string `json:"key"`
	DisplayName string `json:"displayName"`
	Unit        string `json:"unit,omitempty"`
	LogScale    bool   `json:"logScale,omitempty"`
	Description string `json:"description,omitempty"`
}

// Config describes the recognized shape of one history table.
type Config struct {
	Columns []ColumnMeta `json:"columns"`
	Unknown []string     `json:"unknown,omitempty"` // kept as raw columns
}

// Keys returns the canonical keys of all recognized columns.
func (c Config) Keys() []string {
	keys := make([]string, len(c.Columns))
	for i, col := range c.Columns {
		keys[i] = col.Key
	}
	return keys
}

// catalog lists every column the detectors and the default extraction
// parameters know about. Unknown columns still flow through the engine —
// custom phases and parameters can address them — they just carry no
// metadata.
var catalog = []ColumnMeta{
	{Key: "age", DisplayName: "Age", Unit: "yr", Description: "stellar age, non-decreasing"},
	{Key: "log_dt", DisplayName: "Timestep", Unit: "yr", LogScale: true, Description: "log of the timestep, weight for time averages"},
	{Key: "log_L", DisplayName: "Luminosity", Unit: "Lsun", LogScale: true},
	{Key: "log_LH", DisplayName: "H-burning luminosity", Unit: "Lsun", LogScale: true},
	{Key: "log_LHe", DisplayName: "He-burning luminosity", Unit: "Lsun", LogScale: true},
	{Key: "effective_T", DisplayName: "Effective temperature", Unit: "K"},
	{Key: "log_Teff", DisplayName: "Effective temperature", Unit: "K", LogScale: true},
	{Key: "log_g", DisplayName: "Surface gravity", Unit: "cm/s^2", LogScale: true},
	{Key: "log_center_T", DisplayName: "Central temperature", Unit: "K", LogScale: true},
	{Key: "log_center_Rho", DisplayName: "Central density", Unit: "g/cm^3", LogScale: true},
	{Key: "center_h1", DisplayName: "Central H fraction"},
	{Key: "center_he4", DisplayName: "Central He fraction"},
	{Key: "c_core_mass", DisplayName: "CO core mass", Unit: "Msun"},
	{Key: "he_core_mass", DisplayName: "He core mass", Unit: "Msun"},
	{Key: "star_1_mass", DisplayName: "Primary mass", Unit: "Msun"},
	{Key: "star_2_mass", DisplayName: "Secondary mass", Unit: "Msun"},
	{Key: "period_days", DisplayName: "Orbital period", Unit: "d"},
	{Key: "rl_1", DisplayName: "Roche lobe radius (primary)", Unit: "Rsun"},
	{Key: "lg_mstar_dot_1", DisplayName: "Mass-loss rate (primary)", Unit: "Msun/yr", LogScale: true},
	{Key: "CE_phase", DisplayName: "Common-envelope flag"},
}

// Catalog returns the full column catalog.
func Catalog() []ColumnMeta {
	out := make([]ColumnMeta, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the metadata for a canonical column key.
func Lookup(key string) (ColumnMeta, bool) {
	for _, col := range catalog {
		if col.Key == key {
			return col, true
		}
	}
	return ColumnMeta{}, false
}
