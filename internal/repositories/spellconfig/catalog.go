package spellconfig

import (
	"github.com/manaforge/spellcast/internal/entities/spell"
)

// DefaultData returns the built-in catalog. It keeps the engine runnable
// without an external config store and seeds tests with realistic content.
func DefaultData() *Data {
	return &Data{
		Spells:       defaultSpells(),
		Domains:      defaultDomains(),
		CombatRules:  defaultCombatRules(),
		Metamagic:    defaultMetamagic(),
		Combinations: defaultCombinations(),
	}
}

func defaultSpells() []*spell.SpellDefinition {
	return []*spell.SpellDefinition{
		{
			Name:          "fireball",
			School:        spell.SchoolEvocation,
			MPCost:        5,
			ValidDomains:  []string{"arcane", "occult"},
			BaseDamage:    28,
			ScalingFactor: 3,
			DamageType:    "fire",
			SaveType:      spell.SaveReflex,
			SaveForHalf:   true,
			Duration:      spell.DurationInstantaneous,
			RangeFeet:     150,
			TargetShape:   spell.TargetSphere,
			Components:    []spell.Component{spell.ComponentVerbal, spell.ComponentSomatic, spell.ComponentMaterial},
		},
		{
			Name:          "lightning_bolt",
			School:        spell.SchoolEvocation,
			MPCost:        5,
			ValidDomains:  []string{"arcane"},
			BaseDamage:    26,
			ScalingFactor: 3,
			DamageType:    "lightning",
			SaveType:      spell.SaveReflex,
			SaveForHalf:   true,
			Duration:      spell.DurationInstantaneous,
			RangeFeet:     100,
			TargetShape:   spell.TargetLine,
			Components:    []spell.Component{spell.ComponentVerbal, spell.ComponentSomatic, spell.ComponentMaterial},
		},
		{
			Name:          "frost_lance",
			School:        spell.SchoolEvocation,
			MPCost:        4,
			ValidDomains:  []string{"arcane", "nature"},
			BaseDamage:    18,
			ScalingFactor: 2,
			DamageType:    "cold",
			SaveType:      spell.SaveFortitude,
			Duration:      spell.DurationInstantaneous,
			RangeFeet:     60,
			TargetShape:   spell.TargetSingle,
			Components:    []spell.Component{spell.ComponentVerbal, spell.ComponentSomatic},
		},
		{
			Name:          "thunderwave",
			School:        spell.SchoolEvocation,
			MPCost:        3,
			ValidDomains:  []string{"arcane", "nature", "occult"},
			BaseDamage:    13,
			ScalingFactor: 2,
			DamageBonus:   2,
			DamageType:    "thunder",
			SaveType:      spell.SaveFortitude,
			SaveForHalf:   true,
			Duration:      spell.DurationInstantaneous,
			RangeFeet:     15,
			TargetShape:   spell.TargetCone,
			Components:    []spell.Component{spell.ComponentVerbal, spell.ComponentSomatic},
		},
		{
			Name:          "healing_word",
			School:        spell.SchoolConjuration,
			MPCost:        3,
			ValidDomains:  []string{"divine", "nature"},
			BaseHealing:   12,
			ScalingFactor: 2,
			SaveType:      spell.SaveNone,
			Duration:      spell.DurationInstantaneous,
			RangeFeet:     60,
			TargetShape:   spell.TargetSingle,
			Components:    []spell.Component{spell.ComponentVerbal},
		},
		{
			Name:          "cure_wounds",
			School:        spell.SchoolConjuration,
			MPCost:        4,
			ValidDomains:  []string{"divine", "nature"},
			BaseHealing:   18,
			ScalingFactor: 3,
			SaveType:      spell.SaveNone,
			Duration:      spell.DurationInstantaneous,
			RangeFeet:     5,
			TargetShape:   spell.TargetSingle,
			Components:    []spell.Component{spell.ComponentVerbal, spell.ComponentSomatic},
		},
		{
			Name:          "haste",
			School:        spell.SchoolTransmutation,
			MPCost:        6,
			ValidDomains:  []string{"arcane", "occult"},
			SaveType:      spell.SaveNone,
			Concentration: true,
			Duration:      spell.DurationOneMinute,
			RangeFeet:     30,
			TargetShape:   spell.TargetSingle,
			Components:    []spell.Component{spell.ComponentVerbal, spell.ComponentSomatic, spell.ComponentMaterial},
		},
		{
			Name:          "slow",
			School:        spell.SchoolTransmutation,
			MPCost:        6,
			ValidDomains:  []string{"arcane", "occult"},
			SaveType:      spell.SaveWill,
			Concentration: true,
			Duration:      spell.DurationOneMinute,
			RangeFeet:     120,
			TargetShape:   spell.TargetSphere,
			Components:    []spell.Component{spell.ComponentVerbal, spell.ComponentSomatic, spell.ComponentMaterial},
		},
		{
			Name:         "mage_armor",
			School:       spell.SchoolAbjuration,
			MPCost:       3,
			ValidDomains: []string{"arcane", "occult"},
			SaveType:     spell.SaveNone,
			Duration:     spell.DurationEightHours,
			RangeFeet:    5,
			TargetShape:  spell.TargetSingle,
			Components:   []spell.Component{spell.ComponentVerbal, spell.ComponentSomatic, spell.ComponentMaterial},
		},
		{
			Name:          "shield_of_faith",
			School:        spell.SchoolAbjuration,
			MPCost:        2,
			ValidDomains:  []string{"divine"},
			SaveType:      spell.SaveNone,
			Concentration: true,
			Duration:      spell.DurationTenMinutes,
			RangeFeet:     60,
			TargetShape:   spell.TargetSingle,
			Components:    []spell.Component{spell.ComponentVerbal, spell.ComponentSomatic, spell.ComponentMaterial},
		},
		{
			Name:          "wall_of_fire",
			School:        spell.SchoolEvocation,
			MPCost:        7,
			ValidDomains:  []string{"arcane", "occult"},
			BaseDamage:    22,
			ScalingFactor: 3,
			DamageType:    "fire",
			SaveType:      spell.SaveReflex,
			SaveForHalf:   true,
			Concentration: true,
			Duration:      spell.DurationOneMinute,
			RangeFeet:     120,
			TargetShape:   spell.TargetLine,
			Components:    []spell.Component{spell.ComponentVerbal, spell.ComponentSomatic, spell.ComponentMaterial},
		},
		{
			Name:          "entangle",
			School:        spell.SchoolConjuration,
			MPCost:        3,
			ValidDomains:  []string{"nature"},
			SaveType:      spell.SaveFortitude,
			Concentration: true,
			Duration:      spell.DurationOneMinute,
			RangeFeet:     90,
			TargetShape:   spell.TargetSphere,
			Components:    []spell.Component{spell.ComponentVerbal, spell.ComponentSomatic},
		},
	}
}

func defaultDomains() []*spell.DomainProfile {
	return []*spell.DomainProfile{
		{
			Name:             "arcane",
			PrimaryAbility:   spell.AbilityIntelligence,
			MPEfficiency:     1.0,
			SaveDCBonus:      0,
			SchoolAffinities: []spell.School{spell.SchoolEvocation, spell.SchoolTransmutation},
		},
		{
			Name:             "divine",
			PrimaryAbility:   spell.AbilityWisdom,
			MPEfficiency:     1.1,
			SaveDCBonus:      1,
			SchoolAffinities: []spell.School{spell.SchoolAbjuration, spell.SchoolConjuration},
			SchoolPenalties:  []spell.School{spell.SchoolNecromancy},
		},
		{
			Name:             "nature",
			PrimaryAbility:   spell.AbilityWisdom,
			MPEfficiency:     0.9,
			SaveDCBonus:      0,
			SchoolAffinities: []spell.School{spell.SchoolConjuration},
			SchoolPenalties:  []spell.School{spell.SchoolNecromancy},
		},
		{
			Name:             "occult",
			PrimaryAbility:   spell.AbilityCharisma,
			MPEfficiency:     1.25,
			SaveDCBonus:      1,
			SchoolAffinities: []spell.School{spell.SchoolEnchantment, spell.SchoolIllusion},
		},
	}
}

func defaultCombatRules() *spell.CombatRules {
	return &spell.CombatRules{
		BypassesArmorClass:      []spell.School{spell.SchoolEnchantment, spell.SchoolNecromancy},
		BypassesDamageReduction: []spell.School{spell.SchoolEvocation, spell.SchoolNecromancy},
	}
}

func defaultMetamagic() []*spell.MetamagicModifier {
	return []*spell.MetamagicModifier{
		{
			Type:           "empowered",
			CostMultiplier: 0.25,
			Description:    "Increases damage by half again",
			Prerequisites:  []string{spell.PrereqDamage},
		},
		{
			Type:           "blessed",
			CostMultiplier: 0.25,
			Description:    "Increases healing by half again",
			Prerequisites:  []string{spell.PrereqHealing},
		},
		{
			Type:           "extended",
			CostMultiplier: 0.5,
			Description:    "Doubles the spell's duration",
			Prerequisites:  []string{spell.PrereqDuration},
		},
		{
			Type:           "distant",
			CostMultiplier: 0.25,
			Description:    "Doubles the spell's range",
		},
		{
			Type:           "silent",
			CostMultiplier: 0.25,
			Description:    "Casts without verbal components",
			Prerequisites:  []string{spell.PrereqVerbal},
		},
		{
			Type:           "still",
			CostMultiplier: 0.25,
			Description:    "Casts without somatic components",
			Prerequisites:  []string{spell.PrereqSomatic},
		},
		{
			Type:           "twinned",
			CostMultiplier: 1.0,
			Description:    "Targets one additional creature",
			Prerequisites:  []string{spell.PrereqSingleTarget},
		},
		{
			Type:           "heightened",
			CostMultiplier: 0.75,
			Description:    "Raises the save DC by 2",
		},
	}
}

func defaultCombinations() []*spell.SpellCombination {
	return []*spell.SpellCombination{
		{
			Name:              "elemental_fusion",
			Type:              "offensive",
			CompatibleSchools: []spell.School{spell.SchoolEvocation},
			Prerequisites:     []string{spell.PrereqDifferentDamageTypes},
			CostMultiplier:    1.5,
			MaxSpells:         3,
			SynergyBonuses: map[string]float64{
				spell.SynergyDamageMultiplier:    1.25,
				spell.SynergyHybridDamage:        1,
				spell.SynergyCriticalChanceBonus: 0.1,
			},
		},
		{
			Name:              "warding_lattice",
			Type:              "defensive",
			CompatibleSchools: []spell.School{spell.SchoolAbjuration, spell.SchoolTransmutation},
			Prerequisites:     []string{spell.PrereqDurationSpells},
			CostMultiplier:    1.4,
			MaxSpells:         3,
			SynergyBonuses: map[string]float64{
				spell.SynergyDurationMultiplier: 1.5,
				spell.SynergyProtectionStacking: 1,
			},
		},
		{
			Name:              "cascading_storm",
			Type:              "offensive",
			CompatibleSchools: []spell.School{spell.SchoolEvocation, spell.SchoolConjuration},
			Prerequisites:     []string{spell.PrereqAreaSpells},
			CostMultiplier:    1.75,
			MaxSpells:         4,
			SynergyBonuses: map[string]float64{
				spell.SynergyCascadeTriggers: 2,
				spell.SynergyAreaOverlap:     1,
				spell.SynergyRangeMultiplier: 1.25,
			},
		},
	}
}
