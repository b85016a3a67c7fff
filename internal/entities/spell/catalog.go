package spell

// Metamagic prerequisite tags. A tag is satisfied by the resolved effect
// it is checked against.
const (
	PrereqSingleTarget  = "single_target"
	PrereqConcentration = "concentration"
	PrereqDamage        = "damage"
	PrereqHealing       = "healing"
	PrereqDuration      = "duration"
	PrereqVerbal        = "verbal"
	PrereqSomatic       = "somatic"
)

// MetamagicModifier is an immutable catalog entry describing a per-cast
// modifier. Cost multipliers are fractions of the base MP cost.
type MetamagicModifier struct {
	// Type uniquely identifies the modifier (e.g. "empowered")
	Type string `json:"type"`

	// CostMultiplier is the fraction of base cost this modifier adds
	CostMultiplier float64 `json:"cost_multiplier"`

	// Description for the calling layer
	Description string `json:"description"`

	// Prerequisites are tags the spell's properties must satisfy
	Prerequisites []string `json:"prerequisites,omitempty"`
}

// Combination prerequisite tags, checked over the whole spell set.
const (
	PrereqDifferentDamageTypes = "different_damage_types"
	PrereqDurationSpells       = "duration_spells"
	PrereqAreaSpells           = "area_spells"
)

// Synergy bonus keys for SpellCombination.SynergyBonuses. Boolean
// synergies use a nonzero value as true.
const (
	SynergyDamageMultiplier    = "damage_multiplier"
	SynergyHealingMultiplier   = "healing_multiplier"
	SynergyDurationMultiplier  = "duration_multiplier"
	SynergyRangeMultiplier     = "range_multiplier"
	SynergyHybridDamage        = "hybrid_damage"
	SynergyCascadeTriggers     = "cascade_triggers"
	SynergyProtectionStacking  = "protection_stacking"
	SynergyCriticalChanceBonus = "critical_chance_bonus"
	SynergyAreaOverlap         = "area_overlap"
)

// SpellCombination is an immutable catalog entry describing a recipe for
// merging 2+ compatible spells into one synergistic effect.
type SpellCombination struct {
	// Name uniquely identifies the combination
	Name string `json:"name"`

	// Type categorizes the combination (e.g. "offensive", "defensive")
	Type string `json:"type"`

	// CompatibleSchools every member spell must belong to
	CompatibleSchools []School `json:"compatible_schools"`

	// Prerequisites are tags the spell set must satisfy
	Prerequisites []string `json:"prerequisites,omitempty"`

	// CostMultiplier applies to the summed member MP costs
	CostMultiplier float64 `json:"cost_multiplier"`

	// MaxSpells bounds the member count (2-5)
	MaxSpells int `json:"max_spells"`

	// SynergyBonuses maps synergy keys to their magnitudes
	SynergyBonuses map[string]float64 `json:"synergy_bonuses,omitempty"`
}

// CompatibleWith reports whether the school may join this combination
func (c *SpellCombination) CompatibleWith(s School) bool {
	return containsSchool(c.CompatibleSchools, s)
}
