package spellconfig_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manaforge/spellcast/internal/errors"
	"github.com/manaforge/spellcast/internal/repositories/spellconfig"
)

func TestInMemory_Lookups(t *testing.T) {
	repo, err := spellconfig.NewInMemory(spellconfig.DefaultData())
	require.NoError(t, err)
	ctx := context.Background()

	def, err := repo.GetSpell(ctx, "fireball")
	require.NoError(t, err)
	assert.Equal(t, 5, def.MPCost)

	domain, err := repo.GetDomain(ctx, "occult")
	require.NoError(t, err)
	assert.InDelta(t, 1.25, domain.MPEfficiency, 1e-9)

	rules, err := repo.GetCombatRules(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, rules.BypassesDamageReduction)

	mod, err := repo.GetMetamagic(ctx, "empowered")
	require.NoError(t, err)
	assert.InDelta(t, 0.25, mod.CostMultiplier, 1e-9)

	combo, err := repo.GetCombination(ctx, "elemental_fusion")
	require.NoError(t, err)
	assert.Equal(t, 3, combo.MaxSpells)
}

func TestInMemory_NotFound(t *testing.T) {
	repo, err := spellconfig.NewInMemory(spellconfig.DefaultData())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = repo.GetSpell(ctx, "meteor_swarm")
	assert.True(t, errors.IsNotFound(err))

	_, err = repo.GetDomain(ctx, "primal")
	assert.True(t, errors.IsNotFound(err))

	_, err = repo.GetMetamagic(ctx, "quickened")
	assert.True(t, errors.IsNotFound(err))

	_, err = repo.GetCombination(ctx, "arcane_tempest")
	assert.True(t, errors.IsNotFound(err))
}

func TestInMemory_RequiresData(t *testing.T) {
	_, err := spellconfig.NewInMemory(nil)
	assert.Error(t, err)

	_, err = spellconfig.NewInMemory(&spellconfig.Data{})
	assert.Error(t, err, "combat rules are mandatory")
}
