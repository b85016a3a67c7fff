package dice

import (
	"fmt"

	toolkit "github.com/KirkDiggler/rpg-toolkit/dice"
)

// randomRoller implements Roller on top of rpg-toolkit's dice roller
type randomRoller struct {
	roller toolkit.Roller
}

// NewRandomRoller creates a roller backed by rpg-toolkit's default source
func NewRandomRoller() Roller {
	return &randomRoller{roller: toolkit.DefaultRoller}
}

// NewToolkitRoller creates a roller backed by the given rpg-toolkit roller
func NewToolkitRoller(r toolkit.Roller) Roller {
	return &randomRoller{roller: r}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, fmt.Errorf("invalid dice count: %d", count)
	}
	if sides < 1 {
		return nil, fmt.Errorf("invalid dice size: %d", sides)
	}

	rolls, err := r.roller.RollN(count, sides)
	if err != nil {
		return nil, fmt.Errorf("failed to roll %dd%d: %w", count, sides, err)
	}

	raw := 0
	for _, v := range rolls {
		raw += v
	}

	result := &RollResult{
		Total:    raw + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: raw,
	}

	if count == 1 && sides == 20 && len(rolls) == 1 {
		result.IsCrit = rolls[0] == 20
		result.IsFumble = rolls[0] == 1
	}

	return result, nil
}

// RollWithAdvantage implements Roller.RollWithAdvantage
func (r *randomRoller) RollWithAdvantage(sides, bonus int) (*RollResult, error) {
	return r.rollTwice(sides, bonus, true)
}

// RollWithDisadvantage implements Roller.RollWithDisadvantage
func (r *randomRoller) RollWithDisadvantage(sides, bonus int) (*RollResult, error) {
	return r.rollTwice(sides, bonus, false)
}

func (r *randomRoller) rollTwice(sides, bonus int, takeHigher bool) (*RollResult, error) {
	if sides < 1 {
		return nil, fmt.Errorf("invalid dice size: %d", sides)
	}

	rolls, err := r.roller.RollN(2, sides)
	if err != nil {
		return nil, fmt.Errorf("failed to roll 2d%d: %w", sides, err)
	}

	kept := rolls[0]
	if takeHigher && rolls[1] > kept {
		kept = rolls[1]
	}
	if !takeHigher && rolls[1] < kept {
		kept = rolls[1]
	}

	result := &RollResult{
		Total:    kept + bonus,
		Rolls:    rolls, // show both rolls
		Bonus:    bonus,
		Count:    1,
		Sides:    sides,
		RawTotal: kept,
	}

	if sides == 20 {
		result.IsCrit = kept == 20
		result.IsFumble = kept == 1
	}

	return result, nil
}
