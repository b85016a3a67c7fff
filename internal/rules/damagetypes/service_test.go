package damagetypes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/manaforge/spellcast/internal/rules/damagetypes"
)

func TestStatic_Validate(t *testing.T) {
	svc := damagetypes.NewStatic()

	for _, known := range []string{"fire", "cold", "lightning", "acid", "thunder", "poison", "necrotic", "radiant", "force", "psychic"} {
		assert.True(t, svc.Validate(known), known)
	}

	assert.False(t, svc.Validate("glimmer"))
	assert.False(t, svc.Validate(""))
}

func TestStatic_EnvironmentalModifier(t *testing.T) {
	svc := damagetypes.NewStatic()

	tests := []struct {
		damageType  string
		environment string
		want        float64
	}{
		{"fire", damagetypes.EnvironmentUnderwater, 0.5},
		{"fire", damagetypes.EnvironmentRain, 0.75},
		{"fire", damagetypes.EnvironmentDrought, 1.25},
		{"lightning", damagetypes.EnvironmentUnderwater, 1.5},
		{"lightning", damagetypes.EnvironmentStorm, 1.25},
		{"fire", damagetypes.EnvironmentNormal, 1.0},
		{"force", damagetypes.EnvironmentUnderwater, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.damageType+"_"+tt.environment, func(t *testing.T) {
			assert.InDelta(t, tt.want, svc.EnvironmentalModifier(tt.damageType, tt.environment), 1e-9)
		})
	}
}

func TestStatic_ResistancesAndVulnerabilities(t *testing.T) {
	svc := damagetypes.NewStatic()

	assert.Contains(t, svc.Resistances("fire"), "red_dragon")
	assert.Contains(t, svc.Vulnerabilities("radiant"), "undead")
	assert.Empty(t, svc.Resistances("glimmer"))
}

func TestStatic_UnknownInputsAreNeutral(t *testing.T) {
	svc := damagetypes.NewStatic()

	assert.InDelta(t, 1.0, svc.EnvironmentalModifier("glimmer", damagetypes.EnvironmentRain), 1e-9)
	assert.InDelta(t, 1.0, svc.EnvironmentalModifier("fire", "vacuum"), 1e-9)
}
