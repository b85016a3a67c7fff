// Package casting implements the casting orchestrator: the fail-fast
// pipeline that validates a cast, prices it, resolves and transforms the
// effect, and commits concentration. Nothing is committed until every
// check has passed, so a failed cast never costs MP or breaks an existing
// effect.
package casting

//go:generate mockgen -destination=mock/mock_service.go -package=castingmock github.com/manaforge/spellcast/internal/orchestrators/casting Service

import (
	"context"
	"log/slog"
	"sync"

	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/manaforge/spellcast/internal/engine/rpgtoolkit"
	"github.com/manaforge/spellcast/internal/entities/spell"
	"github.com/manaforge/spellcast/internal/errors"
	concentrationorch "github.com/manaforge/spellcast/internal/orchestrators/concentration"
	"github.com/manaforge/spellcast/internal/repositories/spellconfig"
	"github.com/manaforge/spellcast/internal/rules"
	castingrules "github.com/manaforge/spellcast/internal/rules/casting"
	"github.com/manaforge/spellcast/internal/rules/combination"
	"github.com/manaforge/spellcast/internal/rules/metamagic"
)

// Save DCs for combination effects follow the same base as single spells
const saveDCBase = 8

// Event context keys
const (
	eventKeySpell     = "spell"
	eventKeyDomain    = "domain"
	eventKeyMPCost    = "mp_cost"
	eventKeyMetamagic = "metamagic"
)

// Service defines the interface for spell casting
type Service interface {
	// CastSpell runs the full casting pipeline and returns the result
	// the caller applies (MP deduction plus effect application)
	CastSpell(ctx context.Context, input *CastSpellInput) (*CastSpellOutput, error)
}

// Config holds the dependencies for the casting orchestrator
type Config struct {
	ConfigRepo          spellconfig.Repository
	CostCalculator      *castingrules.Calculator
	EffectResolver      *castingrules.Resolver
	MetamagicComposer   *metamagic.Composer
	CombinationComposer *combination.Composer
	Concentration       concentrationorch.Service
	EventBus            rpgevents.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ConfigRepo == nil {
		vb.RequiredField("ConfigRepo")
	}
	if c.CostCalculator == nil {
		vb.RequiredField("CostCalculator")
	}
	if c.EffectResolver == nil {
		vb.RequiredField("EffectResolver")
	}
	if c.MetamagicComposer == nil {
		vb.RequiredField("MetamagicComposer")
	}
	if c.CombinationComposer == nil {
		vb.RequiredField("CombinationComposer")
	}
	if c.Concentration == nil {
		vb.RequiredField("Concentration")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

type orchestrator struct {
	configRepo    spellconfig.Repository
	cost          *castingrules.Calculator
	resolver      *castingrules.Resolver
	metamagic     *metamagic.Composer
	combination   *combination.Composer
	concentration concentrationorch.Service
	eventBus      rpgevents.EventBus

	// casterLocks serializes the check-then-commit sequence per caster
	casterLocks sync.Map // casterID -> *sync.Mutex
}

// NewOrchestrator creates a casting orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		configRepo:    cfg.ConfigRepo,
		cost:          cfg.CostCalculator,
		resolver:      cfg.EffectResolver,
		metamagic:     cfg.MetamagicComposer,
		combination:   cfg.CombinationComposer,
		concentration: cfg.Concentration,
		eventBus:      cfg.EventBus,
	}, nil
}

func (o *orchestrator) lockCaster(casterID string) func() {
	v, _ := o.casterLocks.LoadOrStore(casterID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (o *orchestrator) CastSpell(ctx context.Context, input *CastSpellInput) (*CastSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.CasterID == "" {
		vb.RequiredField("CasterID")
	}
	if input.Domain == "" {
		vb.RequiredField("Domain")
	}
	if input.Combination == nil && input.SpellName == "" {
		vb.RequiredField("SpellName")
	}
	if input.Combination != nil && len(input.Metamagic) > 0 {
		vb.Field("Metamagic", "cannot be combined with a combination cast")
	}
	if input.Combination != nil && input.ExtraMP != 0 {
		vb.Field("ExtraMP", "cannot be channeled into a combination cast")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	unlock := o.lockCaster(input.CasterID)
	defer unlock()

	var result *spell.CastingResult
	var err error
	if input.Combination != nil {
		result, err = o.castCombination(ctx, input)
	} else {
		result, err = o.castSingle(ctx, input)
	}
	if err != nil {
		return nil, err
	}

	o.publishCast(ctx, input, result)

	slog.InfoContext(ctx, "spell cast resolved",
		"caster_id", input.CasterID,
		"spell", result.Effect.SpellName,
		"domain", input.Domain,
		"mp_cost", result.MPCost,
		"concentration", result.Concentration != nil,
	)

	return &CastSpellOutput{Result: result}, nil
}

// castSingle prices, resolves and transforms a single-spell cast. Called
// under the caster lock.
func (o *orchestrator) castSingle(ctx context.Context, input *CastSpellInput) (*spell.CastingResult, error) {
	baseCost, err := o.cost.Cost(ctx, input.SpellName, input.Domain, input.ExtraMP)
	if err != nil {
		return nil, err
	}

	effect, err := o.resolver.Resolve(ctx, &castingrules.ResolveInput{
		SpellName:        input.SpellName,
		Domain:           input.Domain,
		Abilities:        input.Abilities,
		ProficiencyBonus: input.ProficiencyBonus,
		ExtraMP:          input.ExtraMP,
		Environment:      input.Environment,
	})
	if err != nil {
		return nil, err
	}

	totalCost := baseCost
	if len(input.Metamagic) > 0 {
		composed, err := o.metamagic.Apply(ctx, &metamagic.ApplyInput{
			Effect:      effect,
			BaseMPCost:  baseCost,
			Types:       input.Metamagic,
			AvailableMP: input.AvailableMP,
		})
		if err != nil {
			return nil, err
		}
		totalCost = composed.TotalCost
		effect = composed.Effect
	} else if baseCost > input.AvailableMP {
		return nil, rules.ErrInsufficientMP(baseCost, input.AvailableMP)
	}

	return o.commit(ctx, input, totalCost, effect)
}

// castCombination merges the member spells under the recipe. Called under
// the caster lock.
func (o *orchestrator) castCombination(ctx context.Context, input *CastSpellInput) (*spell.CastingResult, error) {
	combined, err := o.combination.Combine(ctx, &combination.CombineInput{
		SpellNames:      input.Combination.SpellNames,
		CombinationName: input.Combination.Name,
		AvailableMP:     input.AvailableMP,
	})
	if err != nil {
		return nil, err
	}

	effect := combined.Effect

	// The merge carries the save type; the DC depends on who is casting
	if effect.SaveType != spell.SaveNone {
		profile, err := o.configRepo.GetDomain(ctx, input.Domain)
		if err != nil {
			if errors.IsNotFound(err) {
				return nil, rules.ErrUnknownDomain(input.Domain)
			}
			return nil, errors.Wrap(err, "failed to load domain profile")
		}
		effect.SaveDC = saveDCBase + input.ProficiencyBonus +
			input.Abilities.Modifier(profile.PrimaryAbility) + profile.SaveDCBonus
	}

	return o.commit(ctx, input, combined.TotalCost, effect)
}

// commit installs concentration when the effect needs it and assembles the
// final result. This is the only step with side effects; everything before
// it is a pure check.
func (o *orchestrator) commit(ctx context.Context, input *CastSpellInput, totalCost int, effect *spell.SpellEffect) (*spell.CastingResult, error) {
	result := &spell.CastingResult{
		Success: true,
		MPCost:  totalCost,
		Effect:  effect,
	}

	if effect.Concentration {
		started, err := o.concentration.Start(ctx, &concentrationorch.StartInput{
			CasterID:  input.CasterID,
			SpellName: effect.SpellName,
			TargetID:  input.TargetID,
			MPCost:    totalCost,
			Duration:  effect.Duration,
			Effect:    effect,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to start concentration")
		}
		result.Concentration = started.Effect
	}

	return result, nil
}

// publishCast announces a resolved cast. Event delivery is advisory;
// failures are logged and never fail the cast.
func (o *orchestrator) publishCast(ctx context.Context, input *CastSpellInput, result *spell.CastingResult) {
	event := rpgevents.NewGameEvent(rpgevents.EventOnSpellCast,
		rpgtoolkit.WrapCaster(input.CasterID),
		rpgtoolkit.WrapTarget(input.TargetID),
	)
	event.Context().Set(eventKeySpell, result.Effect.SpellName)
	event.Context().Set(eventKeyDomain, input.Domain)
	event.Context().Set(eventKeyMPCost, result.MPCost)
	if len(input.Metamagic) > 0 {
		event.Context().Set(eventKeyMetamagic, input.Metamagic)
	}

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish cast event",
			"caster_id", input.CasterID,
			"spell", result.Effect.SpellName,
			"error", err,
		)
	}
}
