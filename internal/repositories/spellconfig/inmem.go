package spellconfig

import (
	"context"

	"github.com/manaforge/spellcast/internal/entities/spell"
	"github.com/manaforge/spellcast/internal/errors"
)

// Data holds the full catalog an in-memory repository serves
type Data struct {
	Spells       []*spell.SpellDefinition
	Domains      []*spell.DomainProfile
	CombatRules  *spell.CombatRules
	Metamagic    []*spell.MetamagicModifier
	Combinations []*spell.SpellCombination
}

type inMemory struct {
	spells       map[string]*spell.SpellDefinition
	domains      map[string]*spell.DomainProfile
	combatRules  *spell.CombatRules
	metamagic    map[string]*spell.MetamagicModifier
	combinations map[string]*spell.SpellCombination
}

// NewInMemory creates a repository serving the given catalog data
func NewInMemory(data *Data) (Repository, error) {
	if data == nil {
		return nil, errors.InvalidArgument("catalog data is required")
	}
	if data.CombatRules == nil {
		return nil, errors.InvalidArgument("combat rules are required")
	}

	repo := &inMemory{
		spells:       make(map[string]*spell.SpellDefinition, len(data.Spells)),
		domains:      make(map[string]*spell.DomainProfile, len(data.Domains)),
		combatRules:  data.CombatRules,
		metamagic:    make(map[string]*spell.MetamagicModifier, len(data.Metamagic)),
		combinations: make(map[string]*spell.SpellCombination, len(data.Combinations)),
	}

	for _, s := range data.Spells {
		repo.spells[s.Name] = s
	}
	for _, d := range data.Domains {
		repo.domains[d.Name] = d
	}
	for _, m := range data.Metamagic {
		repo.metamagic[m.Type] = m
	}
	for _, c := range data.Combinations {
		repo.combinations[c.Name] = c
	}

	return repo, nil
}

var _ Repository = (*inMemory)(nil)

func (r *inMemory) GetSpell(_ context.Context, name string) (*spell.SpellDefinition, error) {
	s, ok := r.spells[name]
	if !ok {
		return nil, errors.NotFoundf("spell %q not found", name).WithMeta("spell", name)
	}
	return s, nil
}

func (r *inMemory) GetDomain(_ context.Context, name string) (*spell.DomainProfile, error) {
	d, ok := r.domains[name]
	if !ok {
		return nil, errors.NotFoundf("domain %q not found", name).WithMeta("domain", name)
	}
	return d, nil
}

func (r *inMemory) GetCombatRules(_ context.Context) (*spell.CombatRules, error) {
	return r.combatRules, nil
}

func (r *inMemory) GetMetamagic(_ context.Context, metamagicType string) (*spell.MetamagicModifier, error) {
	m, ok := r.metamagic[metamagicType]
	if !ok {
		return nil, errors.NotFoundf("metamagic %q not found", metamagicType).WithMeta("metamagic_type", metamagicType)
	}
	return m, nil
}

func (r *inMemory) GetCombination(_ context.Context, name string) (*spell.SpellCombination, error) {
	c, ok := r.combinations[name]
	if !ok {
		return nil, errors.NotFoundf("combination %q not found", name).WithMeta("combination", name)
	}
	return c, nil
}
