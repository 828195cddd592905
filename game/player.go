package game

import "sort"

// Player is a competitor, human or automated. The owned set is a secondary
// index over Territory.owner and is only ever updated through the game's
// ownership-transfer function, keeping the two views consistent.
type Player struct {
	name      string
	automated bool
	owned     map[string]*Territory
}

func newPlayer(name string, automated bool) *Player {
	return &Player{
		name:      name,
		automated: automated,
		owned:     make(map[string]*Territory),
	}
}

// Name returns the competitor's display name.
func (p *Player) Name() string { return p.name }

// Automated reports whether the competitor is machine-controlled.
func (p *Player) Automated() bool { return p.automated }

// OwnedCount returns the number of territories the competitor holds.
func (p *Player) OwnedCount() int { return len(p.owned) }

// Owned returns the competitor's territories sorted by ID for deterministic
// iteration.
func (p *Player) Owned() []*Territory {
	out := make([]*Territory, 0, len(p.owned))
	for _, t := range p.owned {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// TotalArmies sums the armies across all owned territories.
func (p *Player) TotalArmies() int {
	total := 0
	for _, t := range p.owned {
		total += t.armies
	}
	return total
}

// LandWithEnemyNeighbor returns owned territories bordering at least one
// enemy-held territory.
func (p *Player) LandWithEnemyNeighbor(g *Game) []*Territory {
	var out []*Territory
	for _, t := range p.Owned() {
		if t.HasEnemyNeighbor(g) {
			out = append(out, t)
		}
	}
	return out
}

// LandWithFriendlyNeighbor returns owned territories bordering at least one
// territory with the same owner.
func (p *Player) LandWithFriendlyNeighbor(g *Game) []*Territory {
	var out []*Territory
	for _, t := range p.Owned() {
		if t.HasFriendlyNeighbor(g) {
			out = append(out, t)
		}
	}
	return out
}

// AllSingleArmy reports whether every owned territory is down to exactly one
// army, leaving no legal attack or move.
func (p *Player) AllSingleArmy() bool {
	for _, t := range p.owned {
		if t.armies > 1 {
			return false
		}
	}
	return true
}
