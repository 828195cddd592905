package game

// Territory is the smallest ownable unit of the map. It holds its own army
// count and a reference to its current owner; the adjacency list is fixed at
// construction and assumed symmetric (the world tables are hand-verified).
type Territory struct {
	name     string
	id       string
	adjacent []string

	armies int
	owner  *Player
}

func newTerritory(name, id string, adjacent []string) *Territory {
	return &Territory{name: name, id: id, adjacent: adjacent}
}

// Name returns the human-readable territory name.
func (t *Territory) Name() string { return t.name }

// ID returns the stable territory ID (continent code + 1-based index, e.g. "NA1").
func (t *Territory) ID() string { return t.id }

// AdjacentIDs returns the IDs of all territories bordering this one.
func (t *Territory) AdjacentIDs() []string { return t.adjacent }

// Armies returns the current army count.
func (t *Territory) Armies() int { return t.armies }

// Owner returns the competitor currently holding the territory. It is nil
// only before distribution has run.
func (t *Territory) Owner() *Player { return t.owner }

// AddArmy increases the army count by n. Placement and distribution are the
// only operations allowed to create armies.
func (t *Territory) AddArmy(n int) {
	t.armies += n
}

// RemoveArmy decrements the army count by n if at least one army would
// remain, and reports whether it did. This is the single guard that keeps an
// owned territory from dropping to zero armies through combat or movement.
func (t *Territory) RemoveArmy(n int) bool {
	if t.armies-n < 1 {
		return false
	}
	t.armies -= n
	return true
}

// SetArmies overwrites the army count. Conquest transfers use it to stock the
// captured territory with exactly the moved amount.
func (t *Territory) SetArmies(n int) {
	t.armies = n
}

// AdjacentEnemy returns all bordering territories held by other competitors.
func (t *Territory) AdjacentEnemy(g *Game) []*Territory {
	var out []*Territory
	for _, id := range t.adjacent {
		adj, ok := g.Territory(id)
		if ok && adj.owner != t.owner {
			out = append(out, adj)
		}
	}
	return out
}

// AdjacentFriendly returns all bordering territories held by the same competitor.
func (t *Territory) AdjacentFriendly(g *Game) []*Territory {
	var out []*Territory
	for _, id := range t.adjacent {
		adj, ok := g.Territory(id)
		if ok && adj.owner == t.owner {
			out = append(out, adj)
		}
	}
	return out
}

// HasEnemyNeighbor reports whether any bordering territory is enemy-held.
func (t *Territory) HasEnemyNeighbor(g *Game) bool {
	return len(t.AdjacentEnemy(g)) > 0
}

// HasFriendlyNeighbor reports whether any bordering territory shares this
// territory's owner.
func (t *Territory) HasFriendlyNeighbor(g *Game) bool {
	return len(t.AdjacentFriendly(g)) > 0
}

func (t *Territory) String() string {
	return t.name + " (" + t.id + ")"
}
