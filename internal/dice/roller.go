// Package dice provides the dice rolling abstraction used by the casting
// engine. Rolls go through the Roller interface so concentration saves and
// dispel contests are deterministic and scriptable in tests.
package dice

// Roller provides an interface for rolling dice
// This allows us to inject different implementations for testing
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)

	// RollWithAdvantage rolls with advantage (roll twice, take higher)
	RollWithAdvantage(sides, bonus int) (*RollResult, error)

	// RollWithDisadvantage rolls with disadvantage (roll twice, take lower)
	RollWithDisadvantage(sides, bonus int) (*RollResult, error)
}

// RollResult holds the outcome of a dice roll
type RollResult struct {
	// Total is the final result including the bonus
	Total int

	// Rolls are the individual dice values (both dice for advantage rolls)
	Rolls []int

	// Bonus is the flat modifier added to the dice
	Bonus int

	// Count and Sides describe the dice that were rolled
	Count int
	Sides int

	// RawTotal is the dice total before the bonus
	RawTotal int

	// IsCrit and IsFumble are set for natural 20/1 on a single d20
	IsCrit   bool
	IsFumble bool
}
