package spell

import "time"

// SpellEffect is the resolved outcome of a cast before it is applied to
// targets. Metamagic and combinations transform copies of this value;
// the base resolution never mutates shared state.
type SpellEffect struct {
	// SpellName is the spell (or combination) this effect came from
	SpellName string `json:"spell_name"`

	// School of the effect (primary school for combinations)
	School School `json:"school"`

	// Damage and Healing totals after scaling and multipliers
	Damage  int `json:"damage"`
	Healing int `json:"healing"`

	// DamageTypes carried by the effect. Combinations can produce
	// hybrid effects with more than one type.
	DamageTypes []string `json:"damage_types,omitempty"`

	// SaveType, SaveDC and SaveForHalf describe the defensive save
	SaveType    SaveType `json:"save_type"`
	SaveDC      int      `json:"save_dc,omitempty"`
	SaveForHalf bool     `json:"save_for_half,omitempty"`

	// BypassesAC / BypassesDR from the combat rules
	BypassesAC bool `json:"bypasses_ac,omitempty"`
	BypassesDR bool `json:"bypasses_dr,omitempty"`

	// Duration of the effect; nil means instantaneous
	Duration *time.Duration `json:"duration,omitempty"`

	// RangeFeet and TargetShape after any transforms
	RangeFeet   int    `json:"range_feet"`
	TargetShape string `json:"target_shape"`

	// TargetCount is the number of discrete targets (metamagic can raise it)
	TargetCount int `json:"target_count"`

	// Components still required after any removals
	Components []Component `json:"components"`

	// Concentration marks the effect as occupying the caster's
	// concentration slot
	Concentration bool `json:"concentration"`

	// Combination synergy outputs. Zero values mean not present.
	CascadeTriggers     int     `json:"cascade_triggers,omitempty"`
	CriticalChanceBonus float64 `json:"critical_chance_bonus,omitempty"`
	ProtectionStacking  bool    `json:"protection_stacking,omitempty"`
	AreaOverlap         bool    `json:"area_overlap,omitempty"`
}

// Clone returns a deep copy safe to transform independently
func (e *SpellEffect) Clone() *SpellEffect {
	out := *e
	out.DamageTypes = append([]string(nil), e.DamageTypes...)
	out.Components = append([]Component(nil), e.Components...)
	if e.Duration != nil {
		d := *e.Duration
		out.Duration = &d
	}
	return &out
}

// HasDamageType reports whether the effect already carries the type
func (e *SpellEffect) HasDamageType(damageType string) bool {
	for _, t := range e.DamageTypes {
		if t == damageType {
			return true
		}
	}
	return false
}

// RemoveComponent drops the named component if present
func (e *SpellEffect) RemoveComponent(c Component) {
	kept := e.Components[:0]
	for _, have := range e.Components {
		if have != c {
			kept = append(kept, have)
		}
	}
	e.Components = kept
}

// ActiveConcentrationEffect is the single sustained effect a caster may
// hold. Owned exclusively by the concentration tracker; all lifecycle
// transitions go through it.
type ActiveConcentrationEffect struct {
	// ID uniquely identifies this effect instance
	ID string `json:"id"`

	// CasterID owns the effect
	CasterID string `json:"caster_id"`

	// SpellName of the concentrated spell
	SpellName string `json:"spell_name"`

	// TargetID the effect is attached to, if any
	TargetID string `json:"target_id,omitempty"`

	// MPCost paid for the cast; drives dispel DC estimation
	MPCost int `json:"mp_cost"`

	// StartedAt is when concentration began
	StartedAt time.Time `json:"started_at"`

	// Duration until natural expiry; nil means no expiry
	Duration *time.Duration `json:"duration,omitempty"`

	// Effect is the opaque resolved payload
	Effect *SpellEffect `json:"effect,omitempty"`
}

// ExpiresAt returns the expiry time, or ok=false when the effect has no
// natural expiry.
func (e *ActiveConcentrationEffect) ExpiresAt() (time.Time, bool) {
	if e.Duration == nil {
		return time.Time{}, false
	}
	return e.StartedAt.Add(*e.Duration), true
}

// ExpiredAt reports whether the effect has lapsed by the given time
func (e *ActiveConcentrationEffect) ExpiredAt(now time.Time) bool {
	expiry, ok := e.ExpiresAt()
	if !ok {
		return false
	}
	return !now.Before(expiry)
}

// CastingResult is the value returned for every cast attempt. The caller
// applies the MP deduction atomically with this result; the engine never
// holds mana balances itself.
type CastingResult struct {
	// Success is true when the cast resolved
	Success bool `json:"success"`

	// MPCost is the total mana to deduct
	MPCost int `json:"mp_cost"`

	// Effect is the resolved payload
	Effect *SpellEffect `json:"effect,omitempty"`

	// Concentration references the installed effect when the cast
	// required concentration
	Concentration *ActiveConcentrationEffect `json:"concentration,omitempty"`
}
