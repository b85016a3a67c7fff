package casting

import (
	"context"

	"github.com/manaforge/spellcast/internal/entities/spell"
	"github.com/manaforge/spellcast/internal/errors"
	"github.com/manaforge/spellcast/internal/repositories/spellconfig"
	"github.com/manaforge/spellcast/internal/rules"
	"github.com/manaforge/spellcast/internal/rules/damagetypes"
)

// Save DCs start at 8 plus proficiency plus the domain's primary ability
// modifier plus the domain's DC bonus.
const saveDCBase = 8

// Resolver turns a base spell cast into a concrete effect
type Resolver struct {
	configRepo  spellconfig.Repository
	damageTypes damagetypes.Service
}

// ResolverConfig holds the dependencies for the effect resolver
type ResolverConfig struct {
	ConfigRepo  spellconfig.Repository
	DamageTypes damagetypes.Service
}

// Validate ensures all required dependencies are provided
func (c *ResolverConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ConfigRepo == nil {
		vb.RequiredField("ConfigRepo")
	}
	if c.DamageTypes == nil {
		vb.RequiredField("DamageTypes")
	}

	return vb.Build()
}

// NewResolver creates an effect resolver with the provided dependencies
func NewResolver(cfg *ResolverConfig) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Resolver{
		configRepo:  cfg.ConfigRepo,
		damageTypes: cfg.DamageTypes,
	}, nil
}

// ResolveInput describes a base cast to resolve
type ResolveInput struct {
	SpellName        string
	Domain           string
	Abilities        spell.CasterAbilities
	ProficiencyBonus int
	ExtraMP          int
	Environment      string
}

// Resolve computes the effect of a base cast. Pure: no state is touched,
// the same input always yields the same effect.
func (r *Resolver) Resolve(ctx context.Context, input *ResolveInput) (*spell.SpellEffect, error) {
	def, err := r.configRepo.GetSpell(ctx, input.SpellName)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, rules.ErrUnknownSpell(input.SpellName)
		}
		return nil, errors.Wrap(err, "failed to load spell definition")
	}

	profile, err := r.configRepo.GetDomain(ctx, input.Domain)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, rules.ErrUnknownDomain(input.Domain)
		}
		return nil, errors.Wrap(err, "failed to load domain profile")
	}

	if !def.AllowsDomain(profile.Name) {
		return nil, rules.ErrInvalidDomain(def.Name, profile.Name)
	}

	combatRules, err := r.configRepo.GetCombatRules(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load combat rules")
	}

	effect := &spell.SpellEffect{
		SpellName:     def.Name,
		School:        def.School,
		SaveType:      def.SaveType,
		SaveForHalf:   def.SaveForHalf,
		RangeFeet:     def.RangeFeet,
		TargetShape:   def.TargetShape,
		TargetCount:   1,
		Components:    append([]spell.Component(nil), def.Components...),
		Concentration: def.Concentration,
		BypassesAC:    combatRules.BypassesAC(def.School),
		BypassesDR:    combatRules.BypassesDR(def.School),
	}

	if def.SaveType != spell.SaveNone {
		effect.SaveDC = saveDCBase + input.ProficiencyBonus +
			input.Abilities.Modifier(profile.PrimaryAbility) + profile.SaveDCBonus
	}

	extraMP := input.ExtraMP
	if extraMP < 0 {
		extraMP = 0
	}

	if def.BaseDamage > 0 {
		if !r.damageTypes.Validate(def.DamageType) {
			return nil, rules.ErrUnknownDamageType(def.DamageType)
		}

		damage := def.BaseDamage + extraMP*def.ScalingFactor + def.DamageBonus

		environment := input.Environment
		if environment == "" {
			environment = damagetypes.EnvironmentNormal
		}
		modifier := r.damageTypes.EnvironmentalModifier(def.DamageType, environment)

		// Truncate toward zero after the multiplier
		effect.Damage = int(float64(damage) * modifier)
		effect.DamageTypes = []string{def.DamageType}
	}

	if def.BaseHealing > 0 {
		effect.Healing = def.BaseHealing + extraMP*def.ScalingFactor
	}

	if d, ok := def.Duration.Resolve(); ok {
		effect.Duration = &d
	}

	return effect, nil
}
