package concentration_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/manaforge/spellcast/internal/errors"
	"github.com/manaforge/spellcast/internal/pkg/clock"
	"github.com/manaforge/spellcast/internal/redis"
	"github.com/manaforge/spellcast/internal/repositories/concentration"
	"github.com/manaforge/spellcast/internal/testutils"
)

type RedisRepoSuite struct {
	suite.Suite

	ctx     context.Context
	server  *miniredis.Miniredis
	client  redis.Client
	cleanup func()
	clock   *clock.Fixed
	repo    concentration.Repository
}

func (s *RedisRepoSuite) SetupTest() {
	s.ctx = context.Background()
	s.server, s.client, s.cleanup = testutils.CreateTestRedisServer(s.T())
	s.clock = clock.NewFixed(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))

	repo, err := concentration.NewRedis(&concentration.RedisConfig{
		Client: s.client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepoSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepoSuite) TestPutGetDelete() {
	effect := sampleEffect("caster-1")
	effect.StartedAt = s.clock.Now()
	s.Require().NoError(s.repo.Put(s.ctx, effect))

	got, err := s.repo.Get(s.ctx, "caster-1")
	s.Require().NoError(err)
	s.Equal("haste", got.SpellName)
	s.Equal(6, got.MPCost)
	s.Require().NotNil(got.Duration)
	s.Equal(time.Minute, *got.Duration)

	s.Require().NoError(s.repo.Delete(s.ctx, "caster-1"))

	_, err = s.repo.Get(s.ctx, "caster-1")
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepoSuite) TestMissingIsNotFound() {
	_, err := s.repo.Get(s.ctx, "caster-1")
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepoSuite) TestTTLFollowsDuration() {
	effect := sampleEffect("caster-1")
	effect.StartedAt = s.clock.Now()
	s.Require().NoError(s.repo.Put(s.ctx, effect))

	ttl := s.server.TTL("concentration:caster:caster-1")
	s.Greater(ttl, time.Minute, "TTL covers the duration plus grace")
	s.LessOrEqual(ttl, 2*time.Minute)
}

func (s *RedisRepoSuite) TestNoTTLWithoutDuration() {
	effect := sampleEffect("caster-1")
	effect.StartedAt = s.clock.Now()
	effect.Duration = nil
	s.Require().NoError(s.repo.Put(s.ctx, effect))

	s.Equal(time.Duration(0), s.server.TTL("concentration:caster:caster-1"))
}

func (s *RedisRepoSuite) TestListCasterIDs() {
	s.Require().NoError(s.repo.Put(s.ctx, sampleEffect("caster-1")))
	s.Require().NoError(s.repo.Put(s.ctx, sampleEffect("caster-2")))

	ids, err := s.repo.ListCasterIDs(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"caster-1", "caster-2"}, ids)

	s.Require().NoError(s.repo.Delete(s.ctx, "caster-1"))

	ids, err = s.repo.ListCasterIDs(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"caster-2"}, ids)
}

func TestRedisRepoSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoSuite))
}
