// Package bot implements the automated decision policy: one placement step
// followed by a weighted-random sequence of attacks and moves.
package bot

import (
	"math/rand"
	"time"

	"conquest/game"
)

// Each action draw is a uniform integer in [0, AIMax). Values above
// AIThreshold attempt a move, the threshold value itself ends the turn, and
// everything below attempts an attack:
//
//	attack = AIThreshold / AIMax            (16/20)
//	stop   = 1 / AIMax                      (1/20)
//	move   = (AIMax - AIThreshold - 1) / AIMax (3/20)
const (
	AIThreshold = 16
	AIMax       = 20
)

// Policy drives one automated competitor's turn at a time. It only calls
// back into the game's own operations, so every invariant the state machine
// enforces applies to automated play too.
type Policy struct {
	rng    *rand.Rand
	prompt game.DefendPrompt
}

// New creates a policy. A nil rng falls back to a time-seeded source; pass a
// seeded one for reproducible games. The prompt is consulted when an attack
// targets a human-controlled territory and may be nil for all-bot games.
func New(rng *rand.Rand, prompt game.DefendPrompt) *Policy {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Policy{rng: rng, prompt: prompt}
}

// TakeTurn executes one full automated turn: place reinforcements, then
// attack and move at random until a stop outcome, exhaustion, or the end of
// the game.
func (p *Policy) TakeTurn(g *game.Game) {
	g.BeginAutomatedTurn()
	me := g.Current()

	g.Place(p.placements(g, me))

	outcome := p.rng.Intn(AIMax)
	for outcome != AIThreshold && !me.AllSingleArmy() {
		if outcome > AIThreshold && len(me.LandWithFriendlyNeighbor(g)) > 0 {
			if p.move(g, me) {
				// A move consumes the rest of the turn.
				return
			}
		} else if len(me.LandWithEnemyNeighbor(g)) > 0 {
			if p.attack(g, me) {
				// Game won.
				return
			}
		}
		outcome = p.rng.Intn(AIMax)
	}

	if g.FirstTurn() {
		g.Done()
	} else {
		g.PassTurn()
	}
}

// placements builds the reinforcement allocation: max(3, owned/3) armies plus
// bonuses for wholly-owned continents, spread in random positive chunks over
// frontier territories.
func (p *Policy) placements(g *game.Game, me *game.Player) map[string]int {
	remaining := max(3, me.OwnedCount()/3)
	for _, c := range g.Continents() {
		if conqueror, ok := c.Conqueror(); ok && conqueror == me {
			remaining += c.Bonus()
		}
	}

	frontier := me.LandWithEnemyNeighbor(g)
	if len(frontier) == 0 {
		// Distribution guarantees every competitor at least one territory,
		// and the world graph is connected, so a competitor who has not won
		// always has a frontier.
		panic("bot: no owned territory borders an enemy")
	}

	toAdd := make(map[string]int)
	for remaining > 0 {
		t := frontier[p.rng.Intn(len(frontier))]
		amount := p.rng.Intn(remaining) + 1
		toAdd[t.ID()] += amount
		remaining -= amount
	}
	return toAdd
}

// move picks a random source with spare armies and a friendly neighbor, a
// random friendly destination, and moves a random positive count. Reports
// whether a move was made; the game ends the turn as part of the move.
func (p *Policy) move(g *game.Game, me *game.Player) bool {
	var sources []*game.Territory
	for _, t := range me.LandWithFriendlyNeighbor(g) {
		if t.Armies() > 1 {
			sources = append(sources, t)
		}
	}
	if len(sources) == 0 {
		return false
	}

	from := sources[p.rng.Intn(len(sources))]
	friendly := from.AdjacentFriendly(g)
	to := friendly[p.rng.Intn(len(friendly))]
	count := p.rng.Intn(from.Armies()-1) + 1

	return g.Move(count, from, to)
}

// attack picks a random eligible source and enemy neighbor, commits a random
// dice count, resolves the battle, and on conquest transfers a random share
// of the source's armies. Returns true only when the conquest won the game.
func (p *Policy) attack(g *game.Game, me *game.Player) bool {
	var sources []*game.Territory
	for _, t := range me.LandWithEnemyNeighbor(g) {
		if t.Armies() > 1 {
			sources = append(sources, t)
		}
	}
	if len(sources) == 0 {
		return false
	}

	attacking := sources[p.rng.Intn(len(sources))]
	enemies := attacking.AdjacentEnemy(g)
	defending := enemies[p.rng.Intn(len(enemies))]

	maxDice := min(attacking.Armies()-1, 3)
	attackArmies := p.rng.Intn(maxDice) + 1
	defendArmies := p.defendArmies(defending)

	if g.Attack(attacking, attackArmies, defending, defendArmies) {
		// Transfer between the committed attackers and everything the
		// source can spare.
		transfer := p.rng.Intn(attacking.Armies()-attackArmies) + attackArmies
		if g.AttackWon(attacking, defending, transfer) {
			return true
		}
	}
	return false
}

// defendArmies resolves the defender's dice count: automated defenders commit
// the standard maximum, human defenders are asked through the prompt.
func (p *Policy) defendArmies(defending *game.Territory) int {
	limit := min(2, defending.Armies())
	owner := defending.Owner()
	if owner.Automated() || p.prompt == nil {
		return limit
	}
	n := p.prompt.DefendArmies(defending)
	if n < 1 {
		n = 1
	}
	return min(n, limit)
}
