// Package settings loads extraction settings: which phases to locate on a
// track and which compound parameters to extract from it. Settings files are
// YAML; Defaults returns the shipped extraction list.
package settings

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/evotrace-org/evotrace/engine"
)

// Settings describes one extraction run.
type Settings struct {
	// Phases to evaluate explicitly, on top of those implied by Parameters.
	Phases []string `yaml:"phases"`

	// Parameters are compound parameter names, e.g. "max__effective_T__ML".
	Parameters []string `yaml:"parameters"`
}

// Load reads YAML settings. Unknown fields are an error — a typo in a
// settings file should not silently drop half the extraction list.
func Load(r io.Reader) (*Settings, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Settings
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &s, nil
}

// Defaults returns the shipped extraction list: initial and final system
// parameters plus the standard evolution-phase statistics.
func Defaults() *Settings {
	return &Settings{
		Phases: []string{
			engine.PhaseMS, engine.PhaseRGB,
			engine.PhaseHeIgnition, engine.PhaseHeCoreBurning, engine.PhaseHeShellBurning,
			engine.PhaseML, engine.PhaseCE, engine.PhaseHeWD,
		},
		Parameters: []string{
			"star_1_mass__init", "star_1_mass__final",
			"star_2_mass__init", "star_2_mass__final",
			"period_days__init", "period_days__final",
			"age__final",
			"max__rl_1",
			"max__log_LHe",
			"max__effective_T__ML",
			"max__lg_mstar_dot_1__ML",
			"diff__age__ML",
			"rate__star_1_mass__ML",
			"diff__age__HeCoreBurning",
			"avg__log_Teff__HeCoreBurning",
		},
	}
}

// Requests returns every phase the settings imply: the explicit phase list
// plus each phase referenced by a compound parameter, deduplicated in first
// appearance order.
func (s *Settings) Requests() []string {
	seen := make(map[string]bool)
	var phases []string

	add := func(phase string) {
		if phase == "" || seen[phase] {
			return
		}
		seen[phase] = true
		phases = append(phases, phase)
	}

	for _, phase := range s.Phases {
		add(phase)
	}
	for _, par := range s.Parameters {
		add(engine.DecomposeParameter(par).Phase)
	}
	return phases
}
