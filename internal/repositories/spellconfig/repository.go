// Package spellconfig provides read-only access to the spell, domain,
// metamagic, and combination catalogs. Catalog entries are immutable;
// callers receive references and must not mutate them.
package spellconfig

import (
	"context"

	"github.com/manaforge/spellcast/internal/entities/spell"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=spellconfigmock github.com/manaforge/spellcast/internal/repositories/spellconfig Repository

// Repository defines the config lookup interface consumed by the casting
// rules. Missing entries return NotFound errors, never zero-value defaults.
type Repository interface {
	// GetSpell returns the spell definition by name
	GetSpell(ctx context.Context, name string) (*spell.SpellDefinition, error)

	// GetDomain returns the domain profile by name
	GetDomain(ctx context.Context, name string) (*spell.DomainProfile, error)

	// GetCombatRules returns the school bypass lists
	GetCombatRules(ctx context.Context) (*spell.CombatRules, error)

	// GetMetamagic returns the metamagic catalog entry by type
	GetMetamagic(ctx context.Context, metamagicType string) (*spell.MetamagicModifier, error)

	// GetCombination returns the combination catalog entry by name
	GetCombination(ctx context.Context, name string) (*spell.SpellCombination, error)
}
