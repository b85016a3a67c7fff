// Package damagetypes validates damage-type identifiers and reports their
// interaction rules: environmental multipliers, resistances, and
// vulnerabilities.
package damagetypes

//go:generate mockgen -destination=mock/mock_service.go -package=damagetypesmock github.com/manaforge/spellcast/internal/rules/damagetypes Service

// Service defines the damage-type interface consumed by the effect resolver
type Service interface {
	// Validate reports whether the damage type id is recognized
	Validate(damageType string) bool

	// EnvironmentalModifier returns the multiplier the environment
	// applies to this damage type. Unknown environments return 1.0.
	EnvironmentalModifier(damageType, environment string) float64

	// Resistances lists creature tags that resist this damage type
	Resistances(damageType string) []string

	// Vulnerabilities lists creature tags vulnerable to this damage type
	Vulnerabilities(damageType string) []string
}

// Environments recognized by the static rules table
const (
	EnvironmentNormal     = "normal"
	EnvironmentUnderwater = "underwater"
	EnvironmentRain       = "rain"
	EnvironmentDrought    = "drought"
	EnvironmentStorm      = "storm"
)

type damageTypeRules struct {
	environmental   map[string]float64
	resistances     []string
	vulnerabilities []string
}

type static struct {
	table map[string]damageTypeRules
}

// NewStatic creates a Service backed by the built-in interaction table
func NewStatic() Service {
	return &static{table: defaultTable()}
}

func defaultTable() map[string]damageTypeRules {
	return map[string]damageTypeRules{
		"fire": {
			environmental: map[string]float64{
				EnvironmentUnderwater: 0.5,
				EnvironmentRain:       0.75,
				EnvironmentDrought:    1.25,
			},
			resistances:     []string{"red_dragon", "fire_elemental", "devil"},
			vulnerabilities: []string{"treant", "mummy", "web_creature"},
		},
		"cold": {
			environmental: map[string]float64{
				EnvironmentUnderwater: 1.25,
				EnvironmentDrought:    0.75,
			},
			resistances:     []string{"white_dragon", "frost_giant"},
			vulnerabilities: []string{"fire_elemental"},
		},
		"lightning": {
			environmental: map[string]float64{
				EnvironmentUnderwater: 1.5,
				EnvironmentStorm:      1.25,
			},
			resistances:     []string{"blue_dragon", "storm_giant"},
			vulnerabilities: []string{"water_elemental"},
		},
		"acid": {
			environmental:   map[string]float64{},
			resistances:     []string{"black_dragon", "ooze"},
			vulnerabilities: nil,
		},
		"thunder": {
			environmental: map[string]float64{
				EnvironmentUnderwater: 1.25,
			},
			resistances:     nil,
			vulnerabilities: []string{"crystalline_creature"},
		},
		"poison": {
			environmental:   map[string]float64{},
			resistances:     []string{"undead", "construct", "green_dragon"},
			vulnerabilities: nil,
		},
		"necrotic": {
			environmental:   map[string]float64{},
			resistances:     []string{"undead"},
			vulnerabilities: []string{"celestial"},
		},
		"radiant": {
			environmental:   map[string]float64{},
			resistances:     []string{"celestial"},
			vulnerabilities: []string{"undead", "fiend"},
		},
		"force": {
			environmental:   map[string]float64{},
			resistances:     nil,
			vulnerabilities: nil,
		},
		"psychic": {
			environmental:   map[string]float64{},
			resistances:     []string{"construct", "ooze"},
			vulnerabilities: nil,
		},
	}
}

func (s *static) Validate(damageType string) bool {
	_, ok := s.table[damageType]
	return ok
}

func (s *static) EnvironmentalModifier(damageType, environment string) float64 {
	rules, ok := s.table[damageType]
	if !ok {
		return 1.0
	}
	if mod, ok := rules.environmental[environment]; ok {
		return mod
	}
	return 1.0
}

func (s *static) Resistances(damageType string) []string {
	return s.table[damageType].resistances
}

func (s *static) Vulnerabilities(damageType string) []string {
	return s.table[damageType].vulnerabilities
}
