// Package combination merges 2+ compatible spells into one synergistic
// effect at a combined, multiplied MP cost. Validation runs in a fixed
// order (size, schools, prerequisites) and nothing is computed for a set
// that fails any check.
package combination

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/manaforge/spellcast/internal/entities/spell"
	"github.com/manaforge/spellcast/internal/errors"
	"github.com/manaforge/spellcast/internal/repositories/spellconfig"
	"github.com/manaforge/spellcast/internal/rules"
)

const (
	// Combinations always take at least two spells
	minSpells = 2

	// Spells with range beyond this count as area spells for the
	// area_spells prerequisite
	areaRangeThresholdFeet = 30
)

// Composer merges spell sets under combination recipes
type Composer struct {
	configRepo spellconfig.Repository
}

// Config holds the dependencies for the combination composer
type Config struct {
	ConfigRepo spellconfig.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ConfigRepo == nil {
		vb.RequiredField("ConfigRepo")
	}

	return vb.Build()
}

// NewComposer creates a combination composer with the provided dependencies
func NewComposer(cfg *Config) (*Composer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Composer{configRepo: cfg.ConfigRepo}, nil
}

// CombineInput describes a combination attempt
type CombineInput struct {
	// SpellNames are the member spells, 2 to the recipe's max
	SpellNames []string

	// CombinationName selects the recipe
	CombinationName string

	// AvailableMP bounds the combined cost
	AvailableMP int
}

// Result is the outcome of a successful combination
type Result struct {
	// TotalCost is the combined, multiplied MP cost
	TotalCost int

	// Effect is the merged synergistic effect
	Effect *spell.SpellEffect

	// SpellNames are the members, in request order
	SpellNames []string
}

// Combine validates the spell set against the recipe and produces the
// merged effect. Multiplicative synergy bonuses apply once to the
// pre-aggregated sums, never compounded across entries of the same kind.
func (c *Composer) Combine(ctx context.Context, input *CombineInput) (*Result, error) {
	combo, err := c.configRepo.GetCombination(ctx, input.CombinationName)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, rules.ErrUnknownCombination(input.CombinationName)
		}
		return nil, errors.Wrap(err, "failed to load combination catalog entry")
	}

	if len(input.SpellNames) < minSpells || len(input.SpellNames) > combo.MaxSpells {
		return nil, rules.ErrCombinationSizeOutOfRange(combo.Name, len(input.SpellNames), minSpells, combo.MaxSpells)
	}

	defs := make([]*spell.SpellDefinition, 0, len(input.SpellNames))
	for _, name := range input.SpellNames {
		def, err := c.configRepo.GetSpell(ctx, name)
		if err != nil {
			if errors.IsNotFound(err) {
				return nil, rules.ErrUnknownSpell(name)
			}
			return nil, errors.Wrap(err, "failed to load spell definition")
		}
		defs = append(defs, def)
	}

	for _, def := range defs {
		if !combo.CompatibleWith(def.School) {
			return nil, rules.ErrCombinationPrerequisiteUnmet(combo.Name,
				fmt.Sprintf("school %s compatibility", def.School))
		}
	}

	for _, prereq := range combo.Prerequisites {
		if !prerequisiteMet(defs, prereq) {
			return nil, rules.ErrCombinationPrerequisiteUnmet(combo.Name, prereq)
		}
	}

	sum := 0
	for _, def := range defs {
		sum += def.MPCost
	}

	cost := int(math.Ceil(float64(sum) * combo.CostMultiplier))
	if cost < sum+1 {
		cost = sum + 1
	}

	if cost > input.AvailableMP {
		return nil, rules.ErrInsufficientMP(cost, input.AvailableMP)
	}

	return &Result{
		TotalCost:  cost,
		Effect:     mergeEffect(combo, defs),
		SpellNames: append([]string(nil), input.SpellNames...),
	}, nil
}

// prerequisiteMet checks one tag over the whole spell set. Unknown tags
// are never satisfied.
func prerequisiteMet(defs []*spell.SpellDefinition, prereq string) bool {
	switch prereq {
	case spell.PrereqDifferentDamageTypes:
		types := make(map[string]bool)
		for _, def := range defs {
			if def.DamageType != "" {
				types[def.DamageType] = true
			}
		}
		return len(types) >= 2
	case spell.PrereqDurationSpells:
		count := 0
		for _, def := range defs {
			if !def.Duration.Instantaneous() {
				count++
			}
		}
		return count >= 2
	case spell.PrereqAreaSpells:
		count := 0
		for _, def := range defs {
			if def.RangeFeet > areaRangeThresholdFeet {
				count++
			}
		}
		return count >= 2
	default:
		return false
	}
}

// mergeEffect aggregates the member spells and applies the recipe's
// synergy bonuses.
func mergeEffect(combo *spell.SpellCombination, defs []*spell.SpellDefinition) *spell.SpellEffect {
	effect := &spell.SpellEffect{
		SpellName:   combo.Name,
		School:      defs[0].School,
		TargetShape: defs[0].TargetShape,
		TargetCount: 1,
	}

	var damageTypes []string
	seenTypes := make(map[string]bool)
	var maxDuration time.Duration
	componentSet := make(map[spell.Component]bool)

	for _, def := range defs {
		effect.Damage += def.BaseDamage + def.DamageBonus
		effect.Healing += def.BaseHealing

		if def.DamageType != "" && !seenTypes[def.DamageType] {
			seenTypes[def.DamageType] = true
			damageTypes = append(damageTypes, def.DamageType)
		}

		if def.Concentration {
			effect.Concentration = true
		}
		if def.SaveType != spell.SaveNone && effect.SaveType == "" {
			effect.SaveType = def.SaveType
			effect.SaveForHalf = def.SaveForHalf
		}
		if def.RangeFeet > effect.RangeFeet {
			effect.RangeFeet = def.RangeFeet
		}
		if d, ok := def.Duration.Resolve(); ok && d > maxDuration {
			maxDuration = d
		}
		for _, comp := range def.Components {
			if !componentSet[comp] {
				componentSet[comp] = true
				effect.Components = append(effect.Components, comp)
			}
		}
	}

	if effect.SaveType == "" {
		effect.SaveType = spell.SaveNone
	}

	// Hybrid damage carries every member type; otherwise only the
	// primary type survives the merge.
	if len(damageTypes) > 0 {
		if combo.SynergyBonuses[spell.SynergyHybridDamage] != 0 {
			effect.DamageTypes = damageTypes
		} else {
			effect.DamageTypes = damageTypes[:1]
		}
	}

	if m := combo.SynergyBonuses[spell.SynergyDamageMultiplier]; m != 0 {
		effect.Damage = int(float64(effect.Damage) * m)
	}
	if m := combo.SynergyBonuses[spell.SynergyHealingMultiplier]; m != 0 {
		effect.Healing = int(float64(effect.Healing) * m)
	}
	if m := combo.SynergyBonuses[spell.SynergyDurationMultiplier]; m != 0 && maxDuration > 0 {
		maxDuration = time.Duration(float64(maxDuration) * m)
	}
	if m := combo.SynergyBonuses[spell.SynergyRangeMultiplier]; m != 0 {
		effect.RangeFeet = int(float64(effect.RangeFeet) * m)
	}
	if maxDuration > 0 {
		effect.Duration = &maxDuration
	}

	if v := combo.SynergyBonuses[spell.SynergyCascadeTriggers]; v != 0 {
		effect.CascadeTriggers = int(v)
	}
	if combo.SynergyBonuses[spell.SynergyProtectionStacking] != 0 {
		effect.ProtectionStacking = true
	}
	if v := combo.SynergyBonuses[spell.SynergyCriticalChanceBonus]; v != 0 {
		effect.CriticalChanceBonus = v
	}
	if combo.SynergyBonuses[spell.SynergyAreaOverlap] != 0 {
		effect.AreaOverlap = true
	}

	return effect
}
