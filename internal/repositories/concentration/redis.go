package concentration

import (
	"context"
	"encoding/json"
	"time"

	"github.com/manaforge/spellcast/internal/entities/spell"
	"github.com/manaforge/spellcast/internal/errors"
	"github.com/manaforge/spellcast/internal/pkg/clock"
	redisclient "github.com/manaforge/spellcast/internal/redis"
)

const (
	// Key patterns: concentration:caster:{casterID} plus a set index of
	// casters for sweeps
	casterKeyPrefix = "concentration:caster:"
	casterIndexKey  = "concentration:casters"

	// Grace added to the Redis TTL past natural expiry. The tracker owns
	// expiry semantics; the TTL only reclaims abandoned records.
	ttlGrace = 1 * time.Minute
)

// RedisConfig holds the dependencies for the Redis-backed store
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type redisRepo struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedis creates a Redis-backed concentration store
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepo{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepo)(nil)

func (r *redisRepo) Get(ctx context.Context, casterID string) (*spell.ActiveConcentrationEffect, error) {
	if casterID == "" {
		return nil, errors.InvalidArgument("caster ID cannot be empty")
	}

	payload, err := r.client.Get(ctx, casterKeyPrefix+casterID).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, errors.NotFoundf("no concentration effect for caster %q", casterID)
		}
		return nil, errors.Wrap(err, "failed to get concentration effect")
	}

	var effect spell.ActiveConcentrationEffect
	if err := json.Unmarshal([]byte(payload), &effect); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal concentration effect")
	}
	return &effect, nil
}

func (r *redisRepo) Put(ctx context.Context, effect *spell.ActiveConcentrationEffect) error {
	if effect == nil {
		return errors.InvalidArgument("effect cannot be nil")
	}
	if effect.CasterID == "" {
		return errors.InvalidArgument("caster ID cannot be empty")
	}

	payload, err := json.Marshal(effect)
	if err != nil {
		return errors.Wrap(err, "failed to marshal concentration effect")
	}

	var ttl time.Duration
	if expiry, ok := effect.ExpiresAt(); ok {
		ttl = expiry.Sub(r.clock.Now()) + ttlGrace
		if ttl <= 0 {
			ttl = ttlGrace
		}
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, casterKeyPrefix+effect.CasterID, payload, ttl)
	pipe.SAdd(ctx, casterIndexKey, effect.CasterID)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to store concentration effect")
	}
	return nil
}

func (r *redisRepo) Delete(ctx context.Context, casterID string) error {
	if casterID == "" {
		return errors.InvalidArgument("caster ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, casterKeyPrefix+casterID)
	pipe.SRem(ctx, casterIndexKey, casterID)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to delete concentration effect")
	}
	return nil
}

func (r *redisRepo) ListCasterIDs(ctx context.Context) ([]string, error) {
	ids, err := r.client.SMembers(ctx, casterIndexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list concentration casters")
	}
	return ids, nil
}
