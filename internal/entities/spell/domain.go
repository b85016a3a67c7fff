package spell

// Ability identifies a caster ability score
type Ability string

// Abilities
const (
	AbilityStrength     Ability = "strength"
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"
)

// DomainProfile describes a magical tradition as configured. Profiles are
// owned by the config store and never mutated at runtime.
type DomainProfile struct {
	// Name uniquely identifies the domain (e.g. "arcane", "divine")
	Name string `json:"name"`

	// PrimaryAbility drives the save DC ability modifier
	PrimaryAbility Ability `json:"primary_ability"`

	// MPEfficiency multiplies raw MP cost. Below 1.0 is cheaper,
	// above 1.0 is more expensive. Always positive.
	MPEfficiency float64 `json:"mp_efficiency"`

	// SaveDCBonus is added to (or subtracted from) computed save DCs
	SaveDCBonus int `json:"save_dc_bonus"`

	// SchoolAffinities and SchoolPenalties list schools this domain is
	// attuned to or penalized in
	SchoolAffinities []School `json:"school_affinities,omitempty"`
	SchoolPenalties  []School `json:"school_penalties,omitempty"`
}

// CasterAbilities holds per-ability modifiers supplied by the character
// system. Read-only input to the engine.
type CasterAbilities struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// Modifier returns the modifier for the named ability. Unknown abilities
// contribute nothing.
func (a CasterAbilities) Modifier(ability Ability) int {
	switch ability {
	case AbilityStrength:
		return a.Strength
	case AbilityDexterity:
		return a.Dexterity
	case AbilityConstitution:
		return a.Constitution
	case AbilityIntelligence:
		return a.Intelligence
	case AbilityWisdom:
		return a.Wisdom
	case AbilityCharisma:
		return a.Charisma
	default:
		return 0
	}
}

// CombatRules lists the schools whose effects bypass armor class or
// damage reduction. Sourced from config.
type CombatRules struct {
	BypassesArmorClass      []School `json:"bypasses_armor_class"`
	BypassesDamageReduction []School `json:"bypasses_damage_reduction"`
}

func containsSchool(schools []School, s School) bool {
	for _, have := range schools {
		if have == s {
			return true
		}
	}
	return false
}

// BypassesAC reports whether the school ignores armor class
func (r *CombatRules) BypassesAC(s School) bool {
	return containsSchool(r.BypassesArmorClass, s)
}

// BypassesDR reports whether the school ignores damage reduction
func (r *CombatRules) BypassesDR(s School) bool {
	return containsSchool(r.BypassesDamageReduction, s)
}
