package concentration_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manaforge/spellcast/internal/entities/spell"
	"github.com/manaforge/spellcast/internal/errors"
	"github.com/manaforge/spellcast/internal/repositories/concentration"
)

func sampleEffect(casterID string) *spell.ActiveConcentrationEffect {
	d := time.Minute
	return &spell.ActiveConcentrationEffect{
		ID:        "conc_1",
		CasterID:  casterID,
		SpellName: "haste",
		MPCost:    6,
		StartedAt: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		Duration:  &d,
		Effect:    &spell.SpellEffect{SpellName: "haste", Concentration: true, TargetCount: 1},
	}
}

func TestInMemory_PutGetDelete(t *testing.T) {
	repo := concentration.NewInMemory()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, sampleEffect("caster-1")))

	got, err := repo.Get(ctx, "caster-1")
	require.NoError(t, err)
	assert.Equal(t, "haste", got.SpellName)

	require.NoError(t, repo.Delete(ctx, "caster-1"))

	_, err = repo.Get(ctx, "caster-1")
	assert.True(t, errors.IsNotFound(err))
}

func TestInMemory_PutReplaces(t *testing.T) {
	repo := concentration.NewInMemory()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, sampleEffect("caster-1")))

	replacement := sampleEffect("caster-1")
	replacement.ID = "conc_2"
	replacement.SpellName = "slow"
	require.NoError(t, repo.Put(ctx, replacement))

	got, err := repo.Get(ctx, "caster-1")
	require.NoError(t, err)
	assert.Equal(t, "slow", got.SpellName)
}

func TestInMemory_DeleteMissingIsNoop(t *testing.T) {
	repo := concentration.NewInMemory()
	assert.NoError(t, repo.Delete(context.Background(), "caster-1"))
}

func TestInMemory_ListCasterIDs(t *testing.T) {
	repo := concentration.NewInMemory()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, sampleEffect("caster-1")))
	require.NoError(t, repo.Put(ctx, sampleEffect("caster-2")))

	ids, err := repo.ListCasterIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"caster-1", "caster-2"}, ids)
}

func TestInMemory_Validation(t *testing.T) {
	repo := concentration.NewInMemory()
	ctx := context.Background()

	assert.Error(t, repo.Put(ctx, nil))
	assert.Error(t, repo.Put(ctx, &spell.ActiveConcentrationEffect{}))

	_, err := repo.Get(ctx, "")
	assert.Error(t, err)
}
