package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/manaforge/spellcast/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("conc")

	first := gen.Generate()
	second := gen.Generate()

	assert.True(t, strings.HasPrefix(first, "conc_"))
	assert.NotEqual(t, first, second)
}

func TestUUIDGeneratorWithoutPrefix(t *testing.T) {
	gen := idgen.NewUUID("")
	assert.NotContains(t, gen.Generate(), "_")
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("test")

	assert.Equal(t, "test_1", gen.Generate())
	assert.Equal(t, "test_2", gen.Generate())
	assert.Equal(t, "test_3", gen.Generate())
}
