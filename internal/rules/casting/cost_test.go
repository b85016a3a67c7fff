package casting_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manaforge/spellcast/internal/entities/spell"
	"github.com/manaforge/spellcast/internal/errors"
	"github.com/manaforge/spellcast/internal/repositories/spellconfig"
	"github.com/manaforge/spellcast/internal/rules"
	"github.com/manaforge/spellcast/internal/rules/casting"
)

func newCalculator(t *testing.T) *casting.Calculator {
	t.Helper()

	repo, err := spellconfig.NewInMemory(spellconfig.DefaultData())
	require.NoError(t, err)

	calc, err := casting.NewCalculator(&casting.CalculatorConfig{ConfigRepo: repo})
	require.NoError(t, err)
	return calc
}

func TestCost_FireballArcane(t *testing.T) {
	calc := newCalculator(t)

	cost, err := calc.Cost(context.Background(), "fireball", "arcane", 0)
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestCost_DomainEfficiency(t *testing.T) {
	calc := newCalculator(t)
	ctx := context.Background()

	// Expected values are ceil((base + extra) * efficiency).
	tests := []struct {
		name      string
		spellName string
		domain    string
		extraMP   int
		want      int
	}{
		{"occult fireball rounds up", "fireball", "occult", 0, 7},
		{"nature frost_lance rounds up", "frost_lance", "nature", 0, 4},
		{"divine healing_word rounds up", "healing_word", "divine", 0, 4},
		{"extra MP priced before efficiency", "fireball", "occult", 2, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost, err := calc.Cost(ctx, tt.spellName, tt.domain, tt.extraMP)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cost)
		})
	}
}

func TestCost_MonotonicInExtraMP(t *testing.T) {
	calc := newCalculator(t)
	ctx := context.Background()

	prev := 0
	for extra := 0; extra <= 5; extra++ {
		cost, err := calc.Cost(ctx, "fireball", "arcane", extra)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, cost, prev, "cost must never decrease as extra MP grows")
		prev = cost
	}
}

func TestCost_NegativeExtraMPContributesNothing(t *testing.T) {
	calc := newCalculator(t)

	cost, err := calc.Cost(context.Background(), "fireball", "arcane", -3)
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestCost_UnknownSpell(t *testing.T) {
	calc := newCalculator(t)

	_, err := calc.Cost(context.Background(), "meteor_swarm", "arcane", 0)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.True(t, rules.HasReason(err, rules.ReasonUnknownSpell))
}

func TestCost_UnknownDomainNeverDefaults(t *testing.T) {
	calc := newCalculator(t)

	_, err := calc.Cost(context.Background(), "fireball", "primal", 0)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.True(t, rules.HasReason(err, rules.ReasonUnknownDomain))
}

func TestFinalCost_FlooredAtOne(t *testing.T) {
	def := &spell.SpellDefinition{Name: "spark", MPCost: 1}
	profile := &spell.DomainProfile{Name: "cheap", MPEfficiency: 0.1}

	assert.Equal(t, 1, casting.FinalCost(def, profile, 0))
}

func TestFinalCost_EfficiencyBound(t *testing.T) {
	def := &spell.SpellDefinition{Name: "bolt", MPCost: 6}
	cheap := &spell.DomainProfile{Name: "cheap", MPEfficiency: 0.9}
	dear := &spell.DomainProfile{Name: "dear", MPEfficiency: 1.25}

	for extra := 0; extra <= 4; extra++ {
		assert.LessOrEqual(t,
			casting.FinalCost(def, cheap, extra),
			casting.FinalCost(def, dear, extra),
			"a cheaper domain can never cost more for the same cast")
	}
}
