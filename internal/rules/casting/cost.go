// Package casting implements the base spellcasting math: MP cost
// calculation with per-domain efficiency, and resolution of a spell cast
// into a concrete effect. Everything here is pure computation over the
// injected config and damage-type collaborators.
package casting

import (
	"context"
	"math"

	"github.com/manaforge/spellcast/internal/entities/spell"
	"github.com/manaforge/spellcast/internal/errors"
	"github.com/manaforge/spellcast/internal/repositories/spellconfig"
	"github.com/manaforge/spellcast/internal/rules"
)

// Calculator computes final MP costs for single-spell casts
type Calculator struct {
	configRepo spellconfig.Repository
}

// CalculatorConfig holds the dependencies for the cost calculator
type CalculatorConfig struct {
	ConfigRepo spellconfig.Repository
}

// Validate ensures all required dependencies are provided
func (c *CalculatorConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ConfigRepo == nil {
		vb.RequiredField("ConfigRepo")
	}

	return vb.Build()
}

// NewCalculator creates a cost calculator with the provided dependencies
func NewCalculator(cfg *CalculatorConfig) (*Calculator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Calculator{configRepo: cfg.ConfigRepo}, nil
}

// Cost returns the MP cost of casting the spell under the domain with the
// given extra MP. Unknown spells and unknown domains both fail; an unknown
// domain never silently defaults to 1.0 efficiency.
func (c *Calculator) Cost(ctx context.Context, spellName, domain string, extraMP int) (int, error) {
	def, err := c.configRepo.GetSpell(ctx, spellName)
	if err != nil {
		if errors.IsNotFound(err) {
			return 0, rules.ErrUnknownSpell(spellName)
		}
		return 0, errors.Wrap(err, "failed to load spell definition")
	}

	profile, err := c.configRepo.GetDomain(ctx, domain)
	if err != nil {
		if errors.IsNotFound(err) {
			return 0, rules.ErrUnknownDomain(domain)
		}
		return 0, errors.Wrap(err, "failed to load domain profile")
	}

	return FinalCost(def, profile, extraMP), nil
}

// FinalCost is the pure cost formula over already-loaded config entries.
// Negative extra MP contributes nothing; the result is floored at 1.
func FinalCost(def *spell.SpellDefinition, profile *spell.DomainProfile, extraMP int) int {
	if extraMP < 0 {
		extraMP = 0
	}

	raw := def.MPCost + extraMP
	cost := int(math.Ceil(float64(raw) * profile.MPEfficiency))
	if cost < 1 {
		cost = 1
	}
	return cost
}
