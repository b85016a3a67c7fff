// Package metamagic validates and applies per-cast spell modifiers.
// Modifiers layer cost on the base MP cost and transform the resolved
// effect; validation is all-or-nothing, so a failing type never leaves a
// partially modified effect behind.
package metamagic

import (
	"context"

	"github.com/manaforge/spellcast/internal/entities/spell"
	"github.com/manaforge/spellcast/internal/errors"
	"github.com/manaforge/spellcast/internal/repositories/spellconfig"
	"github.com/manaforge/spellcast/internal/rules"
)

// Metamagic types with registered transforms
const (
	TypeEmpowered  = "empowered"
	TypeBlessed    = "blessed"
	TypeExtended   = "extended"
	TypeDistant    = "distant"
	TypeSilent     = "silent"
	TypeStill      = "still"
	TypeTwinned    = "twinned"
	TypeHeightened = "heightened"
)

// Composer applies metamagic modifiers to resolved effects
type Composer struct {
	configRepo spellconfig.Repository
}

// Config holds the dependencies for the metamagic composer
type Config struct {
	ConfigRepo spellconfig.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ConfigRepo == nil {
		vb.RequiredField("ConfigRepo")
	}

	return vb.Build()
}

// NewComposer creates a metamagic composer with the provided dependencies
func NewComposer(cfg *Config) (*Composer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Composer{configRepo: cfg.ConfigRepo}, nil
}

// ApplyInput describes a metamagic composition over a resolved base effect
type ApplyInput struct {
	// Effect is the resolved base effect; never mutated
	Effect *spell.SpellEffect

	// BaseMPCost of the cast before metamagic
	BaseMPCost int

	// Types to apply, in the order requested
	Types []string

	// AvailableMP bounds the total cost
	AvailableMP int
}

// Result is the outcome of a successful composition
type Result struct {
	// TotalCost is base plus extra
	TotalCost int

	// ExtraCost added by the composed set
	ExtraCost int

	// Effect is the transformed copy
	Effect *spell.SpellEffect

	// AppliedTypes in application order
	AppliedTypes []string
}

// Apply validates every requested type and, only if all pass and the cast
// is affordable, applies the transforms to a copy of the effect.
// Multipliers are summed before rounding so composed sets do not
// accumulate per-type rounding drift.
func (c *Composer) Apply(ctx context.Context, input *ApplyInput) (*Result, error) {
	if input.Effect == nil {
		return nil, errors.InvalidArgument("effect is required")
	}
	if len(input.Types) == 0 {
		return nil, errors.InvalidArgument("at least one metamagic type is required")
	}
	if input.BaseMPCost < 1 {
		return nil, errors.InvalidArgumentf("base MP cost must be positive, got %d", input.BaseMPCost)
	}

	mods := make([]*spell.MetamagicModifier, 0, len(input.Types))
	seen := make(map[string]bool, len(input.Types))

	for _, metamagicType := range input.Types {
		if seen[metamagicType] {
			return nil, errors.InvalidArgumentf("metamagic type %q requested more than once", metamagicType)
		}
		seen[metamagicType] = true

		mod, err := c.configRepo.GetMetamagic(ctx, metamagicType)
		if err != nil {
			if errors.IsNotFound(err) {
				return nil, rules.ErrInvalidMetamagicType(metamagicType)
			}
			return nil, errors.Wrap(err, "failed to load metamagic catalog entry")
		}

		for _, prereq := range mod.Prerequisites {
			if !prerequisiteMet(input.Effect, prereq) {
				return nil, rules.ErrMetamagicPrerequisiteUnmet(metamagicType, prereq)
			}
		}

		mods = append(mods, mod)
	}

	sum := 0.0
	for _, mod := range mods {
		sum += mod.CostMultiplier
	}

	// Single truncation over the summed multipliers, floored at 1
	extra := int(float64(input.BaseMPCost) * sum)
	if extra < 1 {
		extra = 1
	}
	total := input.BaseMPCost + extra

	if total > input.AvailableMP {
		return nil, rules.ErrInsufficientMP(total, input.AvailableMP)
	}

	// All checks passed; commit the transforms to a copy
	out := input.Effect.Clone()
	applied := make([]string, 0, len(mods))
	for _, mod := range mods {
		if err := transform(out, mod.Type); err != nil {
			return nil, err
		}
		applied = append(applied, mod.Type)
	}

	return &Result{
		TotalCost:    total,
		ExtraCost:    extra,
		Effect:       out,
		AppliedTypes: applied,
	}, nil
}

// prerequisiteMet checks one tag against the resolved effect. Unknown tags
// are never satisfied.
func prerequisiteMet(effect *spell.SpellEffect, prereq string) bool {
	switch prereq {
	case spell.PrereqSingleTarget:
		return effect.TargetShape == spell.TargetSingle
	case spell.PrereqConcentration:
		return effect.Concentration
	case spell.PrereqDamage:
		return effect.Damage > 0
	case spell.PrereqHealing:
		return effect.Healing > 0
	case spell.PrereqDuration:
		return effect.Duration != nil
	case spell.PrereqVerbal:
		return hasComponent(effect, spell.ComponentVerbal)
	case spell.PrereqSomatic:
		return hasComponent(effect, spell.ComponentSomatic)
	default:
		return false
	}
}

func hasComponent(effect *spell.SpellEffect, c spell.Component) bool {
	for _, have := range effect.Components {
		if have == c {
			return true
		}
	}
	return false
}

// transform mutates the cloned effect for one metamagic type. Each type
// touches a disjoint property, so application order does not matter.
func transform(effect *spell.SpellEffect, metamagicType string) error {
	switch metamagicType {
	case TypeEmpowered:
		effect.Damage = effect.Damage * 3 / 2
	case TypeBlessed:
		effect.Healing = effect.Healing * 3 / 2
	case TypeExtended:
		if effect.Duration != nil {
			d := *effect.Duration * 2
			effect.Duration = &d
		}
	case TypeDistant:
		effect.RangeFeet *= 2
	case TypeSilent:
		effect.RemoveComponent(spell.ComponentVerbal)
	case TypeStill:
		effect.RemoveComponent(spell.ComponentSomatic)
	case TypeTwinned:
		effect.TargetCount++
	case TypeHeightened:
		if effect.SaveDC > 0 {
			effect.SaveDC += 2
		}
	default:
		return errors.Internalf("no transform registered for metamagic %q", metamagicType)
	}
	return nil
}
