package game

import (
	"math/rand"
	"sort"
)

// Rules decides dice caps and battle outcomes.
type Rules interface {
	MaxAttackDice() int
	MaxDefendDice() int
	// Outcome scores two descending-sorted roll sets and returns the losses
	// on each side.
	Outcome(attackRolls, defendRolls []int) (attackerLosses, defenderLosses int)
}

// StandardRules implements the classic dice battle: the attacker commits up
// to 3 dice, the defender up to 2, and ties go to the defender.
type StandardRules struct{}

func (StandardRules) MaxAttackDice() int { return 3 }

func (StandardRules) MaxDefendDice() int { return 2 }

// Outcome pairs off the highest rolls of each side. The attacker needs a
// strictly greater value to score a kill; unpaired leftover rolls are
// discarded, never scored.
func (StandardRules) Outcome(attackRolls, defendRolls []int) (attackerLosses, defenderLosses int) {
	pairs := min(len(attackRolls), len(defendRolls))
	for i := 0; i < pairs; i++ {
		if attackRolls[i] > defendRolls[i] {
			defenderLosses++
		} else {
			attackerLosses++
		}
	}
	return attackerLosses, defenderLosses
}

// ResolveBattle rolls one die per committed unit on each side and scores the
// pairs under the given rules. Callers are responsible for capping the unit
// counts beforehand; each unit is treated as one independent six-sided die.
func ResolveBattle(rng *rand.Rand, rules Rules, attackArmies, defendArmies int) (attackRolls, defendRolls []int, attackerLosses, defenderLosses int) {
	attackRolls = rollDice(rng, attackArmies)
	defendRolls = rollDice(rng, defendArmies)
	attackerLosses, defenderLosses = rules.Outcome(attackRolls, defendRolls)
	return attackRolls, defendRolls, attackerLosses, defenderLosses
}

// rollDice returns n six-sided rolls sorted descending.
func rollDice(rng *rand.Rand, n int) []int {
	rolls := make([]int, n)
	for i := range rolls {
		rolls[i] = rng.Intn(6) + 1
	}
	sort.Sort(sort.Reverse(sort.IntSlice(rolls)))
	return rolls
}
