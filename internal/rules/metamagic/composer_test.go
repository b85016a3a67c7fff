package metamagic_test

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
	"github.com/manaforge/spellcast/internal/rules/metamagic"
)

func newComposer(t *testing.T) *metamagic.Composer {
	t.Helper()

	repo, err := spellconfig.NewInMemory(spellconfig.DefaultData())
	require.NoError(t, err)

	composer, err := metamagic.NewComposer(&metamagic.Config{ConfigRepo: repo})
	require.NoError(t, err)
	return composer
}

func fireballEffect() *spell.SpellEffect {
	return &spell.SpellEffect{
		SpellName:   "fireball",
		School:      spell.SchoolEvocation,
		Damage:      28,
		DamageTypes: []string{"fire"},
		SaveType:    spell.SaveReflex,
		SaveDC:      13,
		SaveForHalf: true,
		RangeFeet:   150,
		TargetShape: spell.TargetSphere,
		TargetCount: 1,
		Components:  []spell.Component{spell.ComponentVerbal, spell.ComponentSomatic, spell.ComponentMaterial},
	}
}

func TestApply_EmpoweredVector(t *testing.T) {
	composer := newComposer(t)
	base := fireballEffect()

	result, err := composer.Apply(context.Background(), &metamagic.ApplyInput{
		Effect:      base,
		BaseMPCost:  5,
		Types:       []string{metamagic.TypeEmpowered},
		AvailableMP: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, 6, result.TotalCost) // 5 + max(1, floor(5*0.25))
	assert.Equal(t, 1, result.ExtraCost)
	assert.Equal(t, 42, result.Effect.Damage) // 28 * 1.5
	assert.Equal(t, 28, base.Damage, "input effect must not be mutated")
}

func TestApply_SummedMultipliersRoundOnce(t *testing.T) {
	composer := newComposer(t)

	result, err := composer.Apply(context.Background(), &metamagic.ApplyInput{
		Effect:      fireballEffect(),
		BaseMPCost:  5,
		Types:       []string{metamagic.TypeEmpowered, metamagic.TypeDistant},
		AvailableMP: 10,
	})
	require.NoError(t, err)

	// 0.25 + 0.25 summed before rounding: floor(5*0.5) = 2
	assert.Equal(t, 7, result.TotalCost)
	assert.Equal(t, 2, result.ExtraCost)
	assert.Equal(t, 300, result.Effect.RangeFeet)
	assert.Equal(t, 42, result.Effect.Damage)
	assert.Equal(t, []string{metamagic.TypeEmpowered, metamagic.TypeDistant}, result.AppliedTypes)
}

func TestApply_ComponentRemoval(t *testing.T) {
	composer := newComposer(t)

	result, err := composer.Apply(context.Background(), &metamagic.ApplyInput{
		Effect:      fireballEffect(),
		BaseMPCost:  5,
		Types:       []string{metamagic.TypeSilent, metamagic.TypeStill},
		AvailableMP: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, []spell.Component{spell.ComponentMaterial}, result.Effect.Components)
}

func TestApply_ExtendedDoublesDuration(t *testing.T) {
	composer := newComposer(t)

	d := time.Minute
	effect := &spell.SpellEffect{
		SpellName:   "haste",
		School:      spell.SchoolTransmutation,
		SaveType:    spell.SaveNone,
		Duration:    &d,
		RangeFeet:   30,
		TargetShape: spell.TargetSingle,
		TargetCount: 1,
		Components:  []spell.Component{spell.ComponentVerbal},
	}

	result, err := composer.Apply(context.Background(), &metamagic.ApplyInput{
		Effect:      effect,
		BaseMPCost:  6,
		Types:       []string{metamagic.TypeExtended},
		AvailableMP: 20,
	})
	require.NoError(t, err)

	require.NotNil(t, result.Effect.Duration)
	assert.Equal(t, 2*time.Minute, *result.Effect.Duration)
	assert.Equal(t, time.Minute, d, "source duration must not change")
}

func TestApply_TwinnedAndHeightened(t *testing.T) {
	composer := newComposer(t)

	effect := fireballEffect()
	effect.TargetShape = spell.TargetSingle

	result, err := composer.Apply(context.Background(), &metamagic.ApplyInput{
		Effect:      effect,
		BaseMPCost:  5,
		Types:       []string{metamagic.TypeTwinned, metamagic.TypeHeightened},
		AvailableMP: 30,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Effect.TargetCount)
	assert.Equal(t, 15, result.Effect.SaveDC)
	// 1.0 + 0.75 = 1.75; floor(5*1.75) = 8
	assert.Equal(t, 13, result.TotalCost)
}

func TestApply_PrerequisiteRejection(t *testing.T) {
	composer := newComposer(t)
	base := fireballEffect() // sphere, not single target

	_, err := composer.Apply(context.Background(), &metamagic.ApplyInput{
		Effect:      base,
		BaseMPCost:  5,
		Types:       []string{metamagic.TypeEmpowered, metamagic.TypeTwinned},
		AvailableMP: 30,
	})
	require.Error(t, err)
	assert.True(t, rules.HasReason(err, rules.ReasonMetamagicPrerequisiteUnmet))
	assert.Equal(t, metamagic.TypeTwinned, errors.GetMeta(err)["metamagic_type"])
	assert.Equal(t, 28, base.Damage, "nothing may be applied when any type fails")
}

func TestApply_UnknownType(t *testing.T) {
	composer := newComposer(t)

	_, err := composer.Apply(context.Background(), &metamagic.ApplyInput{
		Effect:      fireballEffect(),
		BaseMPCost:  5,
		Types:       []string{"quickened"},
		AvailableMP: 30,
	})
	require.Error(t, err)
	assert.True(t, rules.HasReason(err, rules.ReasonInvalidMetamagicType))
}

func TestApply_DuplicateTypeRejected(t *testing.T) {
	composer := newComposer(t)

	_, err := composer.Apply(context.Background(), &metamagic.ApplyInput{
		Effect:      fireballEffect(),
		BaseMPCost:  5,
		Types:       []string{metamagic.TypeEmpowered, metamagic.TypeEmpowered},
		AvailableMP: 30,
	})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestApply_InsufficientMPBeforeTransforms(t *testing.T) {
	composer := newComposer(t)
	base := fireballEffect()

	_, err := composer.Apply(context.Background(), &metamagic.ApplyInput{
		Effect:      base,
		BaseMPCost:  5,
		Types:       []string{metamagic.TypeEmpowered},
		AvailableMP: 5,
	})
	require.Error(t, err)
	assert.True(t, rules.HasReason(err, rules.ReasonInsufficientMP))

	meta := errors.GetMeta(err)
	assert.Equal(t, 6, meta["required_mp"])
	assert.Equal(t, 5, meta["available_mp"])
	assert.Equal(t, 28, base.Damage)
}
