package spellconfig

import (
	"context"
	"encoding/json"
	"time"

	"github.com/manaforge/spellcast/internal/entities/spell"
	"github.com/manaforge/spellcast/internal/errors"
	redisclient "github.com/manaforge/spellcast/internal/redis"
)

const (
	// Key patterns: spellconfig:spell:{name}, spellconfig:domain:{name}, ...
	spellKeyPrefix       = "spellconfig:spell:"
	domainKeyPrefix      = "spellconfig:domain:"
	combatRulesKey       = "spellconfig:combat_rules"
	metamagicKeyPrefix   = "spellconfig:metamagic:"
	combinationKeyPrefix = "spellconfig:combination:"

	defaultCacheTTL = 1 * time.Hour
)

// RedisCacheConfig holds the dependencies for the read-through cache
type RedisCacheConfig struct {
	Client redisclient.Client

	// Source is consulted on cache misses
	Source Repository

	// TTL bounds staleness after a config change. Zero uses the default.
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisCacheConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Source == nil {
		vb.RequiredField("Source")
	}

	return vb.Build()
}

type redisCache struct {
	client redisclient.Client
	source Repository
	ttl    time.Duration
}

// NewRedisCache creates a Repository that caches source lookups in Redis.
// NotFound results from the source are not cached; an unknown identifier
// stays a visible configuration bug rather than a poisoned cache entry.
func NewRedisCache(cfg *RedisCacheConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultCacheTTL
	}

	return &redisCache{
		client: cfg.Client,
		source: cfg.Source,
		ttl:    ttl,
	}, nil
}

var _ Repository = (*redisCache)(nil)

func (r *redisCache) GetSpell(ctx context.Context, name string) (*spell.SpellDefinition, error) {
	var out spell.SpellDefinition
	if ok := r.cached(ctx, spellKeyPrefix+name, &out); ok {
		return &out, nil
	}

	s, err := r.source.GetSpell(ctx, name)
	if err != nil {
		return nil, err
	}

	r.store(ctx, spellKeyPrefix+name, s)
	return s, nil
}

func (r *redisCache) GetDomain(ctx context.Context, name string) (*spell.DomainProfile, error) {
	var out spell.DomainProfile
	if ok := r.cached(ctx, domainKeyPrefix+name, &out); ok {
		return &out, nil
	}

	d, err := r.source.GetDomain(ctx, name)
	if err != nil {
		return nil, err
	}

	r.store(ctx, domainKeyPrefix+name, d)
	return d, nil
}

func (r *redisCache) GetCombatRules(ctx context.Context) (*spell.CombatRules, error) {
	var out spell.CombatRules
	if ok := r.cached(ctx, combatRulesKey, &out); ok {
		return &out, nil
	}

	rules, err := r.source.GetCombatRules(ctx)
	if err != nil {
		return nil, err
	}

	r.store(ctx, combatRulesKey, rules)
	return rules, nil
}

func (r *redisCache) GetMetamagic(ctx context.Context, metamagicType string) (*spell.MetamagicModifier, error) {
	var out spell.MetamagicModifier
	if ok := r.cached(ctx, metamagicKeyPrefix+metamagicType, &out); ok {
		return &out, nil
	}

	m, err := r.source.GetMetamagic(ctx, metamagicType)
	if err != nil {
		return nil, err
	}

	r.store(ctx, metamagicKeyPrefix+metamagicType, m)
	return m, nil
}

func (r *redisCache) GetCombination(ctx context.Context, name string) (*spell.SpellCombination, error) {
	var out spell.SpellCombination
	if ok := r.cached(ctx, combinationKeyPrefix+name, &out); ok {
		return &out, nil
	}

	c, err := r.source.GetCombination(ctx, name)
	if err != nil {
		return nil, err
	}

	r.store(ctx, combinationKeyPrefix+name, c)
	return c, nil
}

// cached loads a key into out, reporting whether the hit was usable.
// Redis failures degrade to source lookups rather than failing the cast.
func (r *redisCache) cached(ctx context.Context, key string, out interface{}) bool {
	payload, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		// Corrupt entry; drop it and fall through to the source
		_ = r.client.Del(ctx, key)
		return false
	}
	return true
}

func (r *redisCache) store(ctx context.Context, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = r.client.Set(ctx, key, payload, r.ttl).Err()
}
