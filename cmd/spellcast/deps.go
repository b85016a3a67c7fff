package main

import (
	"fmt"
	"os"

	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/manaforge/spellcast/internal/dice"
	castingorch "github.com/manaforge/spellcast/internal/orchestrators/casting"
	concentrationorch "github.com/manaforge/spellcast/internal/orchestrators/concentration"
	"github.com/manaforge/spellcast/internal/pkg/clock"
	"github.com/manaforge/spellcast/internal/pkg/idgen"
	redisclient "github.com/manaforge/spellcast/internal/redis"
	concentrationrepo "github.com/manaforge/spellcast/internal/repositories/concentration"
	"github.com/manaforge/spellcast/internal/repositories/spellconfig"
	castingrules "github.com/manaforge/spellcast/internal/rules/casting"
	"github.com/manaforge/spellcast/internal/rules/combination"
	"github.com/manaforge/spellcast/internal/rules/damagetypes"
	"github.com/manaforge/spellcast/internal/rules/metamagic"
)

// services is the wired engine the commands run against
type services struct {
	casting       castingorch.Service
	concentration concentrationorch.Service
}

// buildServices wires the engine. With REDIS_ADDR set, the config catalog
// is cached in Redis and concentration state is shared across processes;
// without it everything runs in-memory.
func buildServices() (*services, func(), error) {
	clk := clock.New()
	cleanup := func() {}

	configRepo, err := spellconfig.NewInMemory(spellconfig.DefaultData())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create config repository: %w", err)
	}
	var concRepo concentrationrepo.Repository = concentrationrepo.NewInMemory()

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client, err := redisclient.NewClient(addr, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		cleanup = func() { _ = client.Close() }

		configRepo, err = spellconfig.NewRedisCache(&spellconfig.RedisCacheConfig{
			Client: client,
			Source: configRepo,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create config cache: %w", err)
		}

		concRepo, err = concentrationrepo.NewRedis(&concentrationrepo.RedisConfig{
			Client: client,
			Clock:  clk,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create concentration store: %w", err)
		}
	}

	eventBus := rpgevents.NewBus()

	tracker, err := concentrationorch.NewOrchestrator(&concentrationorch.Config{
		Repo:        concRepo,
		Clock:       clk,
		Roller:      dice.NewRandomRoller(),
		IDGenerator: idgen.NewUUID("conc"),
		EventBus:    eventBus,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create concentration tracker: %w", err)
	}

	costCalc, err := castingrules.NewCalculator(&castingrules.CalculatorConfig{
		ConfigRepo: configRepo,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create cost calculator: %w", err)
	}

	resolver, err := castingrules.NewResolver(&castingrules.ResolverConfig{
		ConfigRepo:  configRepo,
		DamageTypes: damagetypes.NewStatic(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create effect resolver: %w", err)
	}

	metamagicComposer, err := metamagic.NewComposer(&metamagic.Config{
		ConfigRepo: configRepo,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create metamagic composer: %w", err)
	}

	combinationComposer, err := combination.NewComposer(&combination.Config{
		ConfigRepo: configRepo,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create combination composer: %w", err)
	}

	caster, err := castingorch.NewOrchestrator(&castingorch.Config{
		ConfigRepo:          configRepo,
		CostCalculator:      costCalc,
		EffectResolver:      resolver,
		MetamagicComposer:   metamagicComposer,
		CombinationComposer: combinationComposer,
		Concentration:       tracker,
		EventBus:            eventBus,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create casting orchestrator: %w", err)
	}

	return &services{
		casting:       caster,
		concentration: tracker,
	}, cleanup, nil
}
