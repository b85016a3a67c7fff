package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manaforge/spellcast/internal/entities/spell"
	castingorch "github.com/manaforge/spellcast/internal/orchestrators/casting"
)

var castFlags struct {
	casterID    string
	spellName   string
	domain      string
	availableMP int
	extraMP     int
	environment string
	targetID    string
	metamagic   []string
	combination string
	spells      []string

	proficiency  int
	strength     int
	dexterity    int
	constitution int
	intelligence int
	wisdom       int
	charisma     int
}

var castCmd = &cobra.Command{
	Use:   "cast",
	Short: "Evaluate a spell cast and print the result as JSON",
	RunE:  runCast,
}

func init() {
	f := castCmd.Flags()
	f.StringVar(&castFlags.casterID, "caster", "cli-caster", "caster ID")
	f.StringVar(&castFlags.spellName, "spell", "", "spell name to cast")
	f.StringVar(&castFlags.domain, "domain", "arcane", "magical domain")
	f.IntVar(&castFlags.availableMP, "mp", 10, "available mana points")
	f.IntVar(&castFlags.extraMP, "extra-mp", 0, "extra MP channeled for scaling")
	f.StringVar(&castFlags.environment, "environment", "", "environment (underwater, rain, drought, storm)")
	f.StringVar(&castFlags.targetID, "target", "", "target ID")
	f.StringSliceVar(&castFlags.metamagic, "metamagic", nil, "metamagic types to apply")
	f.StringVar(&castFlags.combination, "combination", "", "combination recipe name")
	f.StringSliceVar(&castFlags.spells, "spells", nil, "member spells for a combination cast")

	f.IntVar(&castFlags.proficiency, "proficiency", 2, "proficiency bonus")
	f.IntVar(&castFlags.strength, "str", 0, "strength modifier")
	f.IntVar(&castFlags.dexterity, "dex", 0, "dexterity modifier")
	f.IntVar(&castFlags.constitution, "con", 0, "constitution modifier")
	f.IntVar(&castFlags.intelligence, "int", 3, "intelligence modifier")
	f.IntVar(&castFlags.wisdom, "wis", 0, "wisdom modifier")
	f.IntVar(&castFlags.charisma, "cha", 0, "charisma modifier")
}

func runCast(cmd *cobra.Command, _ []string) error {
	svcs, cleanup, err := buildServices()
	if err != nil {
		return err
	}
	defer cleanup()

	input := &castingorch.CastSpellInput{
		CasterID:  castFlags.casterID,
		SpellName: castFlags.spellName,
		Domain:    castFlags.domain,
		Abilities: spell.CasterAbilities{
			Strength:     castFlags.strength,
			Dexterity:    castFlags.dexterity,
			Constitution: castFlags.constitution,
			Intelligence: castFlags.intelligence,
			Wisdom:       castFlags.wisdom,
			Charisma:     castFlags.charisma,
		},
		ProficiencyBonus: castFlags.proficiency,
		AvailableMP:      castFlags.availableMP,
		ExtraMP:          castFlags.extraMP,
		Environment:      castFlags.environment,
		TargetID:         castFlags.targetID,
		Metamagic:        castFlags.metamagic,
	}
	if castFlags.combination != "" {
		input.Combination = &castingorch.CombinationRequest{
			Name:       castFlags.combination,
			SpellNames: castFlags.spells,
		}
	}

	out, err := svcs.casting.CastSpell(cmd.Context(), input)
	if err != nil {
		return err
	}

	payload, err := json.MarshalIndent(out.Result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	cmd.Println(string(payload))
	return nil
}
