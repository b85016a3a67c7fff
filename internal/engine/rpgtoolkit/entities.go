// Package rpgtoolkit bridges the casting engine to rpg-toolkit's event
// system. Entity wrappers adapt our identifiers to core.Entity so cast and
// concentration events can name their participants on the bus.
package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Entity type strings used on the bus
const (
	EntityTypeCaster = "caster"
	EntityTypeTarget = "target"
)

// CasterEntity wraps a caster ID to implement core.Entity
type CasterEntity struct {
	ID string
}

// GetID returns the caster's ID
func (c *CasterEntity) GetID() string {
	return c.ID
}

// GetType returns the entity type for casters
func (c *CasterEntity) GetType() string {
	return EntityTypeCaster
}

// TargetEntity wraps a target ID to implement core.Entity
type TargetEntity struct {
	ID string
}

// GetID returns the target's ID
func (t *TargetEntity) GetID() string {
	return t.ID
}

// GetType returns the entity type for targets
func (t *TargetEntity) GetType() string {
	return EntityTypeTarget
}

// WrapCaster builds an event source entity for a caster ID
func WrapCaster(casterID string) *CasterEntity {
	return &CasterEntity{ID: casterID}
}

// WrapTarget builds an event target entity for a target ID, or nil when
// the cast has no discrete target
func WrapTarget(targetID string) core.Entity {
	if targetID == "" {
		return nil
	}
	return &TargetEntity{ID: targetID}
}

// Compile-time check that our entity wrappers implement core.Entity
var (
	_ core.Entity = (*CasterEntity)(nil)
	_ core.Entity = (*TargetEntity)(nil)
)
