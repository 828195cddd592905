package game

import (
	"fmt"

	"conquest/utils"
)

// Snapshot is a complete, serializable copy of the game-state tree. The
// world graph itself is fixed and not part of the snapshot; restoring
// rebuilds it and replays ownership and army counts on top. Persistence of
// snapshots is owned by external collaborators.
type Snapshot struct {
	Players     []PlayerState    `json:"players"`
	Territories []TerritoryState `json:"territories"`
	Current     string           `json:"current"`
	Phase       Phase            `json:"phase"`
	FirstTurn   bool             `json:"firstTurn"`
}

// PlayerState captures one competitor. Active competitors appear in turn
// order before eliminated ones.
type PlayerState struct {
	Name       string `json:"name"`
	Automated  bool   `json:"automated"`
	Eliminated bool   `json:"eliminated,omitempty"`
}

// TerritoryState captures one territory's mutable state.
type TerritoryState struct {
	ID     string `json:"id"`
	Owner  string `json:"owner"`
	Armies int    `json:"armies"`
}

// Snapshot returns a complete copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Current:   g.current.name,
		Phase:     g.phase,
		FirstTurn: g.firstTurn,
	}
	for _, p := range g.active {
		s.Players = append(s.Players, PlayerState{Name: p.name, Automated: p.automated})
	}
	for _, p := range g.eliminated {
		s.Players = append(s.Players, PlayerState{Name: p.name, Automated: p.automated, Eliminated: true})
	}
	for _, c := range g.Continents() {
		for _, t := range c.territories {
			owner := ""
			if t.owner != nil {
				owner = t.owner.name
			}
			s.Territories = append(s.Territories, TerritoryState{ID: t.id, Owner: owner, Armies: t.armies})
		}
	}
	return s
}

// RestoreGame rebuilds a game from a snapshot, substituting the complete
// state tree. The snapshot must describe a playable state: every territory
// owned by an active competitor with at least one army.
func RestoreGame(s Snapshot, options ...Option) (*Game, error) {
	g := newBareGame(options...)
	g.firstTurn = s.FirstTurn
	g.phase = s.Phase

	players := make(map[string]*Player, len(s.Players))
	for _, ps := range s.Players {
		if _, exists := players[ps.Name]; exists {
			return nil, fmt.Errorf("snapshot lists competitor %q twice", ps.Name)
		}
		p := newPlayer(ps.Name, ps.Automated)
		players[ps.Name] = p
		if ps.Eliminated {
			g.eliminated = append(g.eliminated, p)
		} else {
			g.active = append(g.active, p)
		}
	}
	if len(g.active) < 1 {
		return nil, fmt.Errorf("snapshot has no active competitors")
	}

	seen := make(map[string]bool, len(s.Territories))
	for _, ts := range s.Territories {
		t, ok := g.Territory(ts.ID)
		if !ok {
			return nil, fmt.Errorf("snapshot references unknown territory %q", ts.ID)
		}
		owner, ok := players[ts.Owner]
		if !ok {
			return nil, fmt.Errorf("territory %s has unknown owner %q", ts.ID, ts.Owner)
		}
		if ts.Armies < 1 {
			return nil, fmt.Errorf("territory %s has %d armies, need at least 1", ts.ID, ts.Armies)
		}
		g.transferOwnership(t, owner)
		t.SetArmies(ts.Armies)
		seen[ts.ID] = true
	}
	for _, c := range g.Continents() {
		for _, t := range c.territories {
			if !seen[t.id] {
				return nil, fmt.Errorf("snapshot is missing territory %s", t.id)
			}
		}
	}

	for _, p := range g.active {
		if p.OwnedCount() == 0 {
			return nil, fmt.Errorf("active competitor %q owns no territories", p.name)
		}
	}
	for _, p := range g.eliminated {
		if p.OwnedCount() > 0 {
			return nil, fmt.Errorf("eliminated competitor %q still owns territories", p.name)
		}
	}

	current, ok := players[s.Current]
	if !ok || utils.FindIndex(g.active, current) < 0 {
		return nil, fmt.Errorf("snapshot current competitor %q is not active", s.Current)
	}
	g.current = current
	return g, nil
}
