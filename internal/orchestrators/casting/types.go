package casting

import (
	"github.com/manaforge/spellcast/internal/entities/spell"
)

// CombinationRequest selects a combination recipe and its member spells
type CombinationRequest struct {
	// Name of the recipe in the combination catalog
	Name string

	// SpellNames are the member spells, in request order
	SpellNames []string
}

// CastSpellInput describes a full cast attempt. Metamagic and combination
// casting are mutually exclusive on a single attempt.
type CastSpellInput struct {
	// CasterID identifies the caster; all state transitions for this
	// cast are serialized per caster
	CasterID string

	// SpellName of the spell to cast. Ignored for combination casts.
	SpellName string

	// Domain the caster channels through
	Domain string

	// Abilities and ProficiencyBonus come from the character system
	Abilities        spell.CasterAbilities
	ProficiencyBonus int

	// AvailableMP is the caster's current mana; the engine checks
	// affordability but never deducts
	AvailableMP int

	// ExtraMP channeled for scaling. Single-spell casts only.
	ExtraMP int

	// Environment the cast happens in ("" means normal)
	Environment string

	// TargetID the cast is aimed at, if any
	TargetID string

	// Metamagic types to layer onto a single-spell cast
	Metamagic []string

	// Combination casts 2+ spells under a recipe instead of SpellName
	Combination *CombinationRequest
}

// CastSpellOutput wraps the casting result. The caller deducts
// Result.MPCost atomically with applying the effect.
type CastSpellOutput struct {
	Result *spell.CastingResult
}
