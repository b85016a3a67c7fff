// Package concentration provides storage for active concentration effects,
// keyed by caster. The tracker owns all lifecycle decisions; stores only
// hold and return records.
package concentration

import (
	"context"

	"github.com/manaforge/spellcast/internal/entities/spell"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=concentrationmock github.com/manaforge/spellcast/internal/repositories/concentration Repository

// Repository defines the storage interface for concentration effects
type Repository interface {
	// Get returns the caster's active effect, or NotFound
	Get(ctx context.Context, casterID string) (*spell.ActiveConcentrationEffect, error)

	// Put stores the caster's active effect, replacing any previous one
	Put(ctx context.Context, effect *spell.ActiveConcentrationEffect) error

	// Delete removes the caster's active effect. Deleting a missing
	// record is not an error.
	Delete(ctx context.Context, casterID string) error

	// ListCasterIDs returns every caster with a stored effect, for
	// sweep-driven housekeeping
	ListCasterIDs(ctx context.Context) ([]string, error)
}
