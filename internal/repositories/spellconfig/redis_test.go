package spellconfig_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/manaforge/spellcast/internal/entities/spell"
	"github.com/manaforge/spellcast/internal/errors"
	"github.com/manaforge/spellcast/internal/redis"
	"github.com/manaforge/spellcast/internal/repositories/spellconfig"
	spellconfigmock "github.com/manaforge/spellcast/internal/repositories/spellconfig/mock"
	"github.com/manaforge/spellcast/internal/testutils"
)

type RedisCacheSuite struct {
	suite.Suite

	ctx     context.Context
	ctrl    *gomock.Controller
	source  *spellconfigmock.MockRepository
	client  redis.Client
	cleanup func()
	repo    spellconfig.Repository
}

func (s *RedisCacheSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.source = spellconfigmock.NewMockRepository(s.ctrl)
	s.client, s.cleanup = testutils.CreateTestRedisClient(s.T())

	repo, err := spellconfig.NewRedisCache(&spellconfig.RedisCacheConfig{
		Client: s.client,
		Source: s.source,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisCacheSuite) TearDownTest() {
	s.cleanup()
	s.ctrl.Finish()
}

func (s *RedisCacheSuite) TestSpellCachedAfterFirstLookup() {
	def := &spell.SpellDefinition{Name: "fireball", MPCost: 5, School: spell.SchoolEvocation}
	s.source.EXPECT().GetSpell(gomock.Any(), "fireball").Return(def, nil).Times(1)

	first, err := s.repo.GetSpell(s.ctx, "fireball")
	s.Require().NoError(err)
	s.Equal(5, first.MPCost)

	// Second lookup is served from the cache; the source is not consulted
	second, err := s.repo.GetSpell(s.ctx, "fireball")
	s.Require().NoError(err)
	s.Equal(first.Name, second.Name)
}

func (s *RedisCacheSuite) TestNotFoundIsNeverCached() {
	s.source.EXPECT().GetSpell(gomock.Any(), "meteor_swarm").
		Return(nil, errors.NotFound("spell not found")).Times(2)

	_, err := s.repo.GetSpell(s.ctx, "meteor_swarm")
	s.True(errors.IsNotFound(err))

	_, err = s.repo.GetSpell(s.ctx, "meteor_swarm")
	s.True(errors.IsNotFound(err), "misses keep hitting the source")
}

func (s *RedisCacheSuite) TestDomainAndCombatRules() {
	profile := &spell.DomainProfile{Name: "arcane", PrimaryAbility: spell.AbilityIntelligence, MPEfficiency: 1.0}
	rules := &spell.CombatRules{BypassesDamageReduction: []spell.School{spell.SchoolEvocation}}

	s.source.EXPECT().GetDomain(gomock.Any(), "arcane").Return(profile, nil).Times(1)
	s.source.EXPECT().GetCombatRules(gomock.Any()).Return(rules, nil).Times(1)

	for i := 0; i < 2; i++ {
		got, err := s.repo.GetDomain(s.ctx, "arcane")
		s.Require().NoError(err)
		s.Equal("arcane", got.Name)

		cr, err := s.repo.GetCombatRules(s.ctx)
		s.Require().NoError(err)
		s.True(cr.BypassesDR(spell.SchoolEvocation))
	}
}

func (s *RedisCacheSuite) TestMetamagicAndCombinationCached() {
	mod := &spell.MetamagicModifier{Type: "empowered", CostMultiplier: 0.25}
	combo := &spell.SpellCombination{Name: "elemental_fusion", MaxSpells: 3, CostMultiplier: 1.5}

	s.source.EXPECT().GetMetamagic(gomock.Any(), "empowered").Return(mod, nil).Times(1)
	s.source.EXPECT().GetCombination(gomock.Any(), "elemental_fusion").Return(combo, nil).Times(1)

	for i := 0; i < 2; i++ {
		m, err := s.repo.GetMetamagic(s.ctx, "empowered")
		s.Require().NoError(err)
		s.InDelta(0.25, m.CostMultiplier, 1e-9)

		c, err := s.repo.GetCombination(s.ctx, "elemental_fusion")
		s.Require().NoError(err)
		s.Equal(3, c.MaxSpells)
	}
}

func TestRedisCacheSuite(t *testing.T) {
	suite.Run(t, new(RedisCacheSuite))
}
