package game

import (
	"math/rand"
	"sort"
)

// StartingArmies returns the fixed army-point total per competitor for the
// given competitor count.
func StartingArmies(competitors int) int {
	switch competitors {
	case 2:
		return 50
	case 3:
		return 35
	case 4:
		return 30
	case 5:
		return 25
	default:
		return 20
	}
}

// territorySplit returns how many territories each competitor receives, in
// roster order. Four- and five-way games split 42 unevenly; the uneven
// counts are shuffled so no seat is favored.
func territorySplit(competitors int, rng *rand.Rand) []int {
	var split []int
	switch competitors {
	case 2:
		split = []int{21, 21}
	case 3:
		split = []int{14, 14, 14}
	case 4:
		split = []int{10, 10, 11, 11}
	case 5:
		split = []int{9, 9, 8, 8, 8}
	default:
		split = make([]int, competitors)
		for i := range split {
			split[i] = 7
		}
	}
	rng.Shuffle(len(split), func(i, j int) {
		split[i], split[j] = split[j], split[i]
	})
	return split
}

// Partition composes a random integer partition of total into parts
// non-negative values using stick-breaking: draw parts-1 uniform cut points
// in [0, total], sort them, and take successive differences. It is a pure
// function of (total, parts, rng) so distributions can be tested with a
// seeded source.
func Partition(total, parts int, rng *rand.Rand) []int {
	if parts <= 0 {
		return nil
	}
	cuts := make([]int, parts-1)
	for i := range cuts {
		cuts[i] = rng.Intn(total + 1)
	}
	sort.Ints(cuts)

	out := make([]int, parts)
	previous := 0
	for i, cut := range cuts {
		out[i] = cut - previous
		previous = cut
	}
	out[parts-1] = total - previous
	return out
}

// distribute runs the one-shot start-of-game allocation: shuffle the pool of
// all 42 territory IDs, hand each competitor its share of the pool, and give
// every assigned territory one army plus a random share of the competitor's
// remaining army points.
func (g *Game) distribute() {
	pool := make([]string, 0, 42)
	for _, c := range g.Continents() {
		for _, t := range c.territories {
			pool = append(pool, t.id)
		}
	}
	g.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	split := territorySplit(len(g.active), g.rng)
	total := StartingArmies(len(g.active))

	for i, p := range g.active {
		count := split[i]
		// One army per territory is guaranteed; the remainder is split at
		// random across the competitor's territories.
		shares := Partition(total-count, count, g.rng)
		for z := 0; z < count; z++ {
			t, ok := g.Territory(pool[len(pool)-1])
			if !ok {
				panic("game: distribution pool holds unknown territory " + pool[len(pool)-1])
			}
			pool = pool[:len(pool)-1]
			g.transferOwnership(t, p)
			t.SetArmies(shares[z] + 1)
		}
	}
}
