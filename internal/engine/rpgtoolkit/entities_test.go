package rpgtoolkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/manaforge/spellcast/internal/engine/rpgtoolkit"
)

func TestCasterEntity(t *testing.T) {
	entity := rpgtoolkit.WrapCaster("caster-123")

	assert.Equal(t, "caster-123", entity.GetID())
	assert.Equal(t, "caster", entity.GetType())
}

func TestWrapTarget(t *testing.T) {
	entity := rpgtoolkit.WrapTarget("target-456")
	assert.Equal(t, "target-456", entity.GetID())
	assert.Equal(t, "target", entity.GetType())

	assert.Nil(t, rpgtoolkit.WrapTarget(""), "empty target wraps to nil")
}
