// Package spell defines the data model for the mana-metered casting engine:
// spell and domain definitions sourced from config, resolved spell effects,
// and the concentration bookkeeping types.
package spell

// School identifies a school of magic
type School string

// Schools of magic
const (
	SchoolAbjuration    School = "abjuration"
	SchoolConjuration   School = "conjuration"
	SchoolDivination    School = "divination"
	SchoolEnchantment   School = "enchantment"
	SchoolEvocation     School = "evocation"
	SchoolIllusion      School = "illusion"
	SchoolNecromancy    School = "necromancy"
	SchoolTransmutation School = "transmutation"
)

// SaveType identifies the defensive save a spell allows
type SaveType string

// Save types
const (
	SaveNone      SaveType = "none"
	SaveFortitude SaveType = "fortitude"
	SaveReflex    SaveType = "reflex"
	SaveWill      SaveType = "will"
)

// Component identifies a casting component
type Component string

// Casting components
const (
	ComponentVerbal   Component = "verbal"
	ComponentSomatic  Component = "somatic"
	ComponentMaterial Component = "material"
)

// Target shapes
const (
	TargetSingle = "single"
	TargetSphere = "sphere"
	TargetCone   = "cone"
	TargetLine   = "line"
	TargetSelf   = "self"
)

// SpellDefinition describes a spell as configured. Definitions are owned by
// the config store and never mutated at runtime.
type SpellDefinition struct {
	// Name uniquely identifies the spell
	Name string `json:"name"`

	// School of magic the spell belongs to
	School School `json:"school"`

	// MPCost is the base mana cost before domain efficiency
	MPCost int `json:"mp_cost"`

	// ValidDomains are the domains allowed to cast this spell
	ValidDomains []string `json:"valid_domains"`

	// BaseDamage and BaseHealing are the flat values before MP scaling.
	// Zero means the spell has no damage/healing component.
	BaseDamage  int `json:"base_damage,omitempty"`
	BaseHealing int `json:"base_healing,omitempty"`

	// ScalingFactor is the damage/healing added per extra MP spent
	ScalingFactor int `json:"scaling_factor,omitempty"`

	// DamageBonus is a flat contribution applied after MP scaling
	DamageBonus int `json:"damage_bonus,omitempty"`

	// DamageType identifies the damage dealt (e.g. "fire", "cold")
	DamageType string `json:"damage_type,omitempty"`

	// SaveType is the defensive save the spell allows, if any
	SaveType SaveType `json:"save_type"`

	// SaveForHalf halves the effect on a successful save
	SaveForHalf bool `json:"save_for_half,omitempty"`

	// Concentration marks the spell as requiring concentration
	Concentration bool `json:"concentration,omitempty"`

	// Duration descriptor, resolved to seconds at cast time
	Duration DurationDescriptor `json:"duration"`

	// RangeFeet is the casting range
	RangeFeet int `json:"range_feet"`

	// TargetShape describes what the spell targets
	TargetShape string `json:"target_shape"`

	// Components required to cast
	Components []Component `json:"components"`
}

// AllowsDomain reports whether the domain may cast this spell
func (s *SpellDefinition) AllowsDomain(domain string) bool {
	for _, d := range s.ValidDomains {
		if d == domain {
			return true
		}
	}
	return false
}

// HasComponent reports whether casting requires the given component
func (s *SpellDefinition) HasComponent(c Component) bool {
	for _, have := range s.Components {
		if have == c {
			return true
		}
	}
	return false
}
