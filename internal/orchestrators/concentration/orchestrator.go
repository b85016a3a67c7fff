// Package concentration implements the concentration tracker: one sustained
// effect per caster, with damage checks, dispel contests, natural expiry and
// implicit replacement. All transitions for a caster are serialized behind a
// per-caster lock so the single-slot invariant holds under concurrent calls.
package concentration

//go:generate mockgen -destination=mock/mock_service.go -package=concentrationmock github.com/manaforge/spellcast/internal/orchestrators/concentration Service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/manaforge/spellcast/internal/dice"
	"github.com/manaforge/spellcast/internal/engine/rpgtoolkit"
	"github.com/manaforge/spellcast/internal/entities/spell"
	"github.com/manaforge/spellcast/internal/errors"
	"github.com/manaforge/spellcast/internal/pkg/clock"
	"github.com/manaforge/spellcast/internal/pkg/idgen"
	"github.com/manaforge/spellcast/internal/repositories/concentration"
)

const (
	// Damage checks never drop below this DC
	minDamageCheckDC = 10

	// Dispel contests start here and scale with the effect's cost
	dispelDCBase = 10

	d20Sides = 20
)

// Reasons attached to concentration-removed events
const (
	ReasonReplaced  = "replaced"
	ReasonExpired   = "expired"
	ReasonDamage    = "damage"
	ReasonDispelled = "dispelled"
	ReasonVoluntary = "voluntary"
)

// Event context keys
const (
	eventKeySpell    = "spell"
	eventKeyEffectID = "effect_id"
	eventKeyReason   = "reason"
)

// Service defines the interface for concentration tracking
type Service interface {
	// Start installs a new concentration effect, implicitly breaking any
	// effect already held by the caster
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)

	// GetActive returns the caster's current effect, reaping it first if
	// it has lapsed
	GetActive(ctx context.Context, input *GetActiveInput) (*GetActiveOutput, error)

	// HandleDamage runs a concentration check against damage taken
	HandleDamage(ctx context.Context, input *HandleDamageInput) (*HandleDamageOutput, error)

	// AttemptDispel contests the target caster's concentration
	AttemptDispel(ctx context.Context, input *AttemptDispelInput) (*AttemptDispelOutput, error)

	// Break voluntarily ends the caster's concentration
	Break(ctx context.Context, input *BreakInput) (*BreakOutput, error)

	// Sweep reaps lapsed effects across all casters
	Sweep(ctx context.Context, input *SweepInput) (*SweepOutput, error)
}

// Config holds the dependencies for the concentration tracker
type Config struct {
	Repo        concentration.Repository
	Clock       clock.Clock
	Roller      dice.Roller
	IDGenerator idgen.Generator
	EventBus    rpgevents.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repo == nil {
		vb.RequiredField("Repo")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

type orchestrator struct {
	repo     concentration.Repository
	clock    clock.Clock
	roller   dice.Roller
	idGen    idgen.Generator
	eventBus rpgevents.EventBus

	// casterLocks serializes all transitions per caster
	casterLocks sync.Map // casterID -> *sync.Mutex
}

// NewOrchestrator creates a concentration tracker with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		repo:     cfg.Repo,
		clock:    cfg.Clock,
		roller:   cfg.Roller,
		idGen:    cfg.IDGenerator,
		eventBus: cfg.EventBus,
	}, nil
}

func (o *orchestrator) lockCaster(casterID string) func() {
	v, _ := o.casterLocks.LoadOrStore(casterID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (o *orchestrator) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	if input.CasterID == "" {
		vb.RequiredField("CasterID")
	}
	if input.SpellName == "" {
		vb.RequiredField("SpellName")
	}
	if input.Effect == nil {
		vb.RequiredField("Effect")
	}
	if input.MPCost < 1 {
		vb.Field("MPCost", "must be positive")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	unlock := o.lockCaster(input.CasterID)
	defer unlock()

	replaced, err := o.activeLocked(ctx, input.CasterID)
	if err != nil {
		return nil, err
	}
	if replaced != nil {
		if err := o.removeLocked(ctx, replaced, ReasonReplaced); err != nil {
			return nil, err
		}
	}

	effect := &spell.ActiveConcentrationEffect{
		ID:        o.idGen.Generate(),
		CasterID:  input.CasterID,
		SpellName: input.SpellName,
		TargetID:  input.TargetID,
		MPCost:    input.MPCost,
		StartedAt: o.clock.Now(),
		Duration:  input.Duration,
		Effect:    input.Effect,
	}

	if err := o.repo.Put(ctx, effect); err != nil {
		return nil, errors.Wrap(err, "failed to store concentration effect")
	}

	o.publish(ctx, rpgevents.EventOnConditionApplied, effect, "")

	slog.InfoContext(ctx, "concentration started",
		"caster_id", effect.CasterID,
		"spell", effect.SpellName,
		"effect_id", effect.ID,
	)

	return &StartOutput{Effect: effect, Replaced: replaced}, nil
}

func (o *orchestrator) GetActive(ctx context.Context, input *GetActiveInput) (*GetActiveOutput, error) {
	if input == nil || input.CasterID == "" {
		return nil, errors.InvalidArgument("caster ID is required")
	}

	unlock := o.lockCaster(input.CasterID)
	defer unlock()

	effect, err := o.activeLocked(ctx, input.CasterID)
	if err != nil {
		return nil, err
	}
	return &GetActiveOutput{Effect: effect}, nil
}

func (o *orchestrator) HandleDamage(ctx context.Context, input *HandleDamageInput) (*HandleDamageOutput, error) {
	if input == nil || input.CasterID == "" {
		return nil, errors.InvalidArgument("caster ID is required")
	}
	if input.Damage < 1 {
		return nil, errors.InvalidArgumentf("damage must be positive, got %d", input.Damage)
	}

	unlock := o.lockCaster(input.CasterID)
	defer unlock()

	effect, err := o.activeLocked(ctx, input.CasterID)
	if err != nil {
		return nil, err
	}
	if effect == nil {
		// Nothing to break; damage to a non-concentrating caster is a
		// no-op here
		return &HandleDamageOutput{HadEffect: false, Maintained: true}, nil
	}

	dc := input.Damage / 2
	if dc < minDamageCheckDC {
		dc = minDamageCheckDC
	}

	bonus := input.Abilities.Modifier(spell.AbilityConstitution) +
		input.ProficiencyBonus + input.BonusModifier

	var roll *dice.RollResult
	if input.Advantage {
		roll, err = o.roller.RollWithAdvantage(d20Sides, bonus)
	} else {
		roll, err = o.roller.Roll(1, d20Sides, bonus)
	}
	if err != nil {
		return nil, errors.Wrap(err, "concentration check roll failed")
	}

	out := &HandleDamageOutput{
		HadEffect:  true,
		Maintained: roll.Total >= dc,
		DC:         dc,
		Roll:       roll,
	}

	if !out.Maintained {
		if err := o.removeLocked(ctx, effect, ReasonDamage); err != nil {
			return nil, err
		}
		out.BrokenEffect = effect

		slog.InfoContext(ctx, "concentration broken by damage",
			"caster_id", effect.CasterID,
			"spell", effect.SpellName,
			"dc", dc,
			"rolled", roll.Total,
		)
	}

	return out, nil
}

func (o *orchestrator) AttemptDispel(ctx context.Context, input *AttemptDispelInput) (*AttemptDispelOutput, error) {
	if input == nil || input.TargetCasterID == "" {
		return nil, errors.InvalidArgument("target caster ID is required")
	}

	unlock := o.lockCaster(input.TargetCasterID)
	defer unlock()

	effect, err := o.activeLocked(ctx, input.TargetCasterID)
	if err != nil {
		return nil, err
	}
	if effect == nil {
		return &AttemptDispelOutput{
			Message: "target is not concentrating on anything",
		}, nil
	}

	// Estimate the spell's level from what it cost to cast
	level := effect.MPCost / 2
	if level < 1 {
		level = 1
	}
	dc := dispelDCBase + level

	roll, err := o.roller.Roll(1, d20Sides, input.CheckModifier)
	if err != nil {
		return nil, errors.Wrap(err, "dispel check roll failed")
	}

	out := &AttemptDispelOutput{
		TargetHadEffect: true,
		DC:              dc,
		Roll:            roll,
	}

	if roll.Total >= dc {
		if err := o.removeLocked(ctx, effect, ReasonDispelled); err != nil {
			return nil, err
		}
		out.Success = true
		out.Dispelled = effect
		out.Message = fmt.Sprintf("dispelled %s (rolled %d vs DC %d)", effect.SpellName, roll.Total, dc)

		slog.InfoContext(ctx, "concentration dispelled",
			"caster_id", effect.CasterID,
			"spell", effect.SpellName,
			"dc", dc,
			"rolled", roll.Total,
		)
	} else {
		out.Message = fmt.Sprintf("failed to dispel %s (rolled %d vs DC %d)", effect.SpellName, roll.Total, dc)
	}

	return out, nil
}

func (o *orchestrator) Break(ctx context.Context, input *BreakInput) (*BreakOutput, error) {
	if input == nil || input.CasterID == "" {
		return nil, errors.InvalidArgument("caster ID is required")
	}

	unlock := o.lockCaster(input.CasterID)
	defer unlock()

	effect, err := o.activeLocked(ctx, input.CasterID)
	if err != nil {
		return nil, err
	}
	if effect == nil {
		return &BreakOutput{Broken: false}, nil
	}

	if err := o.removeLocked(ctx, effect, ReasonVoluntary); err != nil {
		return nil, err
	}
	return &BreakOutput{Broken: true, Effect: effect}, nil
}

func (o *orchestrator) Sweep(ctx context.Context, _ *SweepInput) (*SweepOutput, error) {
	ids, err := o.repo.ListCasterIDs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list casters for sweep")
	}

	out := &SweepOutput{Checked: len(ids)}
	for _, id := range ids {
		removed, err := o.sweepCaster(ctx, id)
		if err != nil {
			return nil, err
		}
		if removed {
			out.Removed++
		}
	}
	return out, nil
}

func (o *orchestrator) sweepCaster(ctx context.Context, casterID string) (bool, error) {
	unlock := o.lockCaster(casterID)
	defer unlock()

	effect, err := o.repo.Get(ctx, casterID)
	if err != nil {
		if errors.IsNotFound(err) {
			return false, nil
		}
		return false, errors.Wrap(err, "failed to load concentration effect")
	}

	if !effect.ExpiredAt(o.clock.Now()) {
		return false, nil
	}
	if err := o.removeLocked(ctx, effect, ReasonExpired); err != nil {
		return false, err
	}
	return true, nil
}

// activeLocked loads the caster's effect under the caster lock, reaping it
// if it has lapsed. Returns nil when the slot is free.
func (o *orchestrator) activeLocked(ctx context.Context, casterID string) (*spell.ActiveConcentrationEffect, error) {
	effect, err := o.repo.Get(ctx, casterID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to load concentration effect")
	}

	if effect.ExpiredAt(o.clock.Now()) {
		if err := o.removeLocked(ctx, effect, ReasonExpired); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return effect, nil
}

// removeLocked deletes the effect and announces the removal. Must be called
// under the caster lock.
func (o *orchestrator) removeLocked(ctx context.Context, effect *spell.ActiveConcentrationEffect, reason string) error {
	if err := o.repo.Delete(ctx, effect.CasterID); err != nil {
		return errors.Wrap(err, "failed to remove concentration effect")
	}
	o.publish(ctx, rpgevents.EventOnConditionRemoved, effect, reason)
	return nil
}

// publish emits a lifecycle event. Event delivery is advisory; failures are
// logged and never fail the transition.
func (o *orchestrator) publish(ctx context.Context, eventType string, effect *spell.ActiveConcentrationEffect, reason string) {
	event := rpgevents.NewGameEvent(eventType,
		rpgtoolkit.WrapCaster(effect.CasterID),
		rpgtoolkit.WrapTarget(effect.TargetID),
	)
	event.Context().Set(eventKeySpell, effect.SpellName)
	event.Context().Set(eventKeyEffectID, effect.ID)
	if reason != "" {
		event.Context().Set(eventKeyReason, reason)
	}

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish concentration event",
			"event_type", eventType,
			"caster_id", effect.CasterID,
			"error", err,
		)
	}
}
