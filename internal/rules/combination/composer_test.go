package combination_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manaforge/spellcast/internal/entities/spell"
	"github.com/manaforge/spellcast/internal/errors"
	"github.com/manaforge/spellcast/internal/repositories/spellconfig"
	"github.com/manaforge/spellcast/internal/rules"
	"github.com/manaforge/spellcast/internal/rules/combination"
)

func newComposer(t *testing.T, data *spellconfig.Data) *combination.Composer {
	t.Helper()

	repo, err := spellconfig.NewInMemory(data)
	require.NoError(t, err)

	composer, err := combination.NewComposer(&combination.Config{ConfigRepo: repo})
	require.NoError(t, err)
	return composer
}

func TestCombine_ElementalFusion(t *testing.T) {
	composer := newComposer(t, spellconfig.DefaultData())

	result, err := composer.Combine(context.Background(), &combination.CombineInput{
		SpellNames:      []string{"fireball", "lightning_bolt"},
		CombinationName: "elemental_fusion",
		AvailableMP:     20,
	})
	require.NoError(t, err)

	// sum = 10, ceil(10 * 1.5) = 15 > sum+1
	assert.Equal(t, 15, result.TotalCost)
	assert.Equal(t, []string{"fireball", "lightning_bolt"}, result.SpellNames)

	effect := result.Effect
	assert.Equal(t, "elemental_fusion", effect.SpellName)
	assert.Equal(t, 67, effect.Damage) // (28+26) * 1.25, truncated
	assert.Equal(t, []string{"fire", "lightning"}, effect.DamageTypes, "hybrid damage keeps every member type")
	assert.Equal(t, 150, effect.RangeFeet)
	assert.Equal(t, spell.SaveReflex, effect.SaveType)
	assert.InDelta(t, 0.1, effect.CriticalChanceBonus, 1e-9)
}

func TestCombine_SameDamageTypeRejected(t *testing.T) {
	composer := newComposer(t, spellconfig.DefaultData())

	_, err := composer.Combine(context.Background(), &combination.CombineInput{
		SpellNames:      []string{"fireball", "wall_of_fire"},
		CombinationName: "elemental_fusion",
		AvailableMP:     50,
	})
	require.Error(t, err)
	assert.True(t, rules.HasReason(err, rules.ReasonCombinationPrerequisiteUnmet))
}

func TestCombine_SizeBounds(t *testing.T) {
	composer := newComposer(t, spellconfig.DefaultData())
	ctx := context.Background()

	_, err := composer.Combine(ctx, &combination.CombineInput{
		SpellNames:      []string{"fireball"},
		CombinationName: "elemental_fusion",
		AvailableMP:     50,
	})
	require.Error(t, err)
	assert.True(t, rules.HasReason(err, rules.ReasonCombinationSizeOutOfRange))

	_, err = composer.Combine(ctx, &combination.CombineInput{
		SpellNames:      []string{"fireball", "lightning_bolt", "frost_lance", "thunderwave"},
		CombinationName: "elemental_fusion", // max 3
		AvailableMP:     50,
	})
	require.Error(t, err)
	assert.True(t, rules.HasReason(err, rules.ReasonCombinationSizeOutOfRange))
}

func TestCombine_SchoolCompatibility(t *testing.T) {
	composer := newComposer(t, spellconfig.DefaultData())

	// healing_word is conjuration; elemental_fusion takes evocation only
	_, err := composer.Combine(context.Background(), &combination.CombineInput{
		SpellNames:      []string{"fireball", "healing_word"},
		CombinationName: "elemental_fusion",
		AvailableMP:     50,
	})
	require.Error(t, err)
	assert.True(t, rules.HasReason(err, rules.ReasonCombinationPrerequisiteUnmet))
}

func TestCombine_UnknownCombination(t *testing.T) {
	composer := newComposer(t, spellconfig.DefaultData())

	_, err := composer.Combine(context.Background(), &combination.CombineInput{
		SpellNames:      []string{"fireball", "lightning_bolt"},
		CombinationName: "arcane_tempest",
		AvailableMP:     50,
	})
	require.Error(t, err)
	assert.True(t, rules.HasReason(err, rules.ReasonUnknownCombination))
}

func TestCombine_InsufficientMP(t *testing.T) {
	composer := newComposer(t, spellconfig.DefaultData())

	_, err := composer.Combine(context.Background(), &combination.CombineInput{
		SpellNames:      []string{"fireball", "lightning_bolt"},
		CombinationName: "elemental_fusion",
		AvailableMP:     14,
	})
	require.Error(t, err)
	assert.True(t, rules.HasReason(err, rules.ReasonInsufficientMP))
	assert.Equal(t, 15, errors.GetMeta(err)["required_mp"])
}

func TestCombine_WardingLattice(t *testing.T) {
	composer := newComposer(t, spellconfig.DefaultData())

	result, err := composer.Combine(context.Background(), &combination.CombineInput{
		SpellNames:      []string{"mage_armor", "haste"},
		CombinationName: "warding_lattice",
		AvailableMP:     20,
	})
	require.NoError(t, err)

	// sum = 9, ceil(9 * 1.4) = 13
	assert.Equal(t, 13, result.TotalCost)

	effect := result.Effect
	assert.True(t, effect.ProtectionStacking)
	assert.True(t, effect.Concentration, "haste carries concentration into the merge")
	require.NotNil(t, effect.Duration)
	assert.Equal(t, 12*time.Hour, *effect.Duration) // max(8h, 1m) * 1.5
}

func TestCombine_CascadingStorm(t *testing.T) {
	composer := newComposer(t, spellconfig.DefaultData())

	// fireball (150ft) and entangle (90ft) are both area spells
	result, err := composer.Combine(context.Background(), &combination.CombineInput{
		SpellNames:      []string{"fireball", "entangle"},
		CombinationName: "cascading_storm",
		AvailableMP:     20,
	})
	require.NoError(t, err)

	// sum = 8, ceil(8 * 1.75) = 14
	assert.Equal(t, 14, result.TotalCost)

	effect := result.Effect
	assert.Equal(t, 2, effect.CascadeTriggers)
	assert.True(t, effect.AreaOverlap)
	assert.Equal(t, 187, effect.RangeFeet) // 150 * 1.25, truncated
	// no hybrid_damage synergy, so only the primary type survives
	assert.Equal(t, []string{"fire"}, effect.DamageTypes)
}

func TestCombine_CostFloorAboveSum(t *testing.T) {
	data := spellconfig.DefaultData()
	data.Combinations = append(data.Combinations, &spell.SpellCombination{
		Name:              "twin_sparks",
		Type:              "offensive",
		CompatibleSchools: []spell.School{spell.SchoolEvocation},
		Prerequisites:     []string{spell.PrereqDifferentDamageTypes},
		CostMultiplier:    1.0,
		MaxSpells:         2,
	})
	composer := newComposer(t, data)

	result, err := composer.Combine(context.Background(), &combination.CombineInput{
		SpellNames:      []string{"fireball", "lightning_bolt"},
		CombinationName: "twin_sparks",
		AvailableMP:     20,
	})
	require.NoError(t, err)

	// ceil(10 * 1.0) = 10 would undercut the members; floor is sum+1
	assert.Equal(t, 11, result.TotalCost)
}
