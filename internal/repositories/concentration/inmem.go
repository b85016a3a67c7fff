package concentration

import (
	"context"
	"sync"

	"github.com/manaforge/spellcast/internal/entities/spell"
	"github.com/manaforge/spellcast/internal/errors"
)

type inMemory struct {
	mu      sync.RWMutex
	effects map[string]*spell.ActiveConcentrationEffect
}

// NewInMemory creates an in-process concentration store
func NewInMemory() Repository {
	return &inMemory{
		effects: make(map[string]*spell.ActiveConcentrationEffect),
	}
}

var _ Repository = (*inMemory)(nil)

func (r *inMemory) Get(_ context.Context, casterID string) (*spell.ActiveConcentrationEffect, error) {
	if casterID == "" {
		return nil, errors.InvalidArgument("caster ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	effect, ok := r.effects[casterID]
	if !ok {
		return nil, errors.NotFoundf("no concentration effect for caster %q", casterID)
	}
	return effect, nil
}

func (r *inMemory) Put(_ context.Context, effect *spell.ActiveConcentrationEffect) error {
	if effect == nil {
		return errors.InvalidArgument("effect cannot be nil")
	}
	if effect.CasterID == "" {
		return errors.InvalidArgument("caster ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.effects[effect.CasterID] = effect
	return nil
}

func (r *inMemory) Delete(_ context.Context, casterID string) error {
	if casterID == "" {
		return errors.InvalidArgument("caster ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.effects, casterID)
	return nil
}

func (r *inMemory) ListCasterIDs(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.effects))
	for id := range r.effects {
		ids = append(ids, id)
	}
	return ids, nil
}
