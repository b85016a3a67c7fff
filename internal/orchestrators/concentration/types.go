package concentration

import (
	"time"

	"github.com/manaforge/spellcast/internal/dice"
	"github.com/manaforge/spellcast/internal/entities/spell"
)

// StartInput begins concentration on a newly cast spell
type StartInput struct {
	// CasterID owns the concentration slot
	CasterID string

	// SpellName of the concentrated spell
	SpellName string

	// TargetID the effect is attached to, if any
	TargetID string

	// MPCost paid for the cast; drives dispel difficulty later
	MPCost int

	// Duration until natural expiry; nil means held until broken
	Duration *time.Duration

	// Effect is the resolved payload to sustain
	Effect *spell.SpellEffect
}

// StartOutput reports the installed effect and whatever it displaced
type StartOutput struct {
	// Effect is the newly installed concentration record
	Effect *spell.ActiveConcentrationEffect

	// Replaced is the previous effect implicitly broken by this start,
	// nil when the slot was free
	Replaced *spell.ActiveConcentrationEffect
}

// GetActiveInput looks up a caster's concentration slot
type GetActiveInput struct {
	CasterID string
}

// GetActiveOutput carries the active effect, nil when the slot is free
// (including when a stored effect lapsed and was reaped on read)
type GetActiveOutput struct {
	Effect *spell.ActiveConcentrationEffect
}

// HandleDamageInput triggers a concentration check after the caster takes
// damage
type HandleDamageInput struct {
	CasterID string

	// Damage taken; sets the check DC
	Damage int

	// Abilities supplies the constitution modifier for the save
	Abilities spell.CasterAbilities

	// ProficiencyBonus added when the caster is proficient in the save
	ProficiencyBonus int

	// BonusModifier covers situational bonuses (items, auras)
	BonusModifier int

	// Advantage rolls twice and keeps the higher d20
	Advantage bool
}

// HandleDamageOutput reports the check outcome
type HandleDamageOutput struct {
	// HadEffect is false when the caster was not concentrating; no roll
	// is made in that case
	HadEffect bool

	// Maintained is true when concentration survives the damage
	Maintained bool

	// DC the check had to meet
	DC int

	// Roll is the d20 result, nil when no check was needed
	Roll *dice.RollResult

	// BrokenEffect is the effect lost to the failed check
	BrokenEffect *spell.ActiveConcentrationEffect
}

// AttemptDispelInput contests another caster's concentration
type AttemptDispelInput struct {
	// TargetCasterID is the concentrating caster under attack
	TargetCasterID string

	// CheckModifier is the dispeller's full check bonus
	CheckModifier int
}

// AttemptDispelOutput reports the contest outcome
type AttemptDispelOutput struct {
	// TargetHadEffect is false when there was nothing to dispel
	TargetHadEffect bool

	// Success is true when the effect was torn down
	Success bool

	// DC derived from the effect's MP cost
	DC int

	// Roll is the dispel check, nil when no contest happened
	Roll *dice.RollResult

	// Message summarizes the outcome for callers that relay it
	Message string

	// Dispelled is the removed effect on success
	Dispelled *spell.ActiveConcentrationEffect
}

// BreakInput voluntarily ends a caster's concentration
type BreakInput struct {
	CasterID string
}

// BreakOutput reports whether anything was actually broken
type BreakOutput struct {
	Broken bool
	Effect *spell.ActiveConcentrationEffect
}

// SweepInput reaps naturally expired effects across all casters
type SweepInput struct{}

// SweepOutput reports sweep counts
type SweepOutput struct {
	// Checked is the number of casters with stored effects
	Checked int

	// Removed is the number of lapsed effects reaped
	Removed int
}
