package metrics

import (
	"time"

	"conquest/game"
)

// MatchMetric summarizes one completed game.
type MatchMetric struct {
	Winner       string
	Turns        int
	Battles      int
	Conquests    int
	Eliminations int
	Duration     time.Duration
}

// Collector implements game.Observer and accumulates per-match counters
// while a game runs. Register it before the first turn.
type Collector struct {
	startTime time.Time

	turns     int
	battles   int
	conquests int
	owners    map[string]string
}

func NewCollector() *Collector {
	return &Collector{
		startTime: time.Now(),
		owners:    make(map[string]string),
	}
}

// StateChanged tallies turn completions and battle rounds, and detects
// conquests by diffing territory ownership between notifications.
func (c *Collector) StateChanged(g *game.Game) {
	switch g.Phase() {
	case game.PhaseTurnComplete:
		c.turns++
	case game.PhaseAttack:
		c.battles++
	}
	for _, continent := range g.Continents() {
		for _, t := range continent.Territories() {
			owner := ""
			if t.Owner() != nil {
				owner = t.Owner().Name()
			}
			if previous, seen := c.owners[t.ID()]; seen && previous != owner {
				c.conquests++
			}
			c.owners[t.ID()] = owner
		}
	}
}

// LogLine is a no-op; the collector only tracks state.
func (c *Collector) LogLine(string) {}

// Complete freezes the counters into a MatchMetric.
func (c *Collector) Complete(g *game.Game) MatchMetric {
	winner := ""
	if w, ok := g.Winner(); ok {
		winner = w.Name()
	}
	return MatchMetric{
		Winner:       winner,
		Turns:        c.turns,
		Battles:      c.battles,
		Conquests:    c.conquests,
		Eliminations: len(g.EliminatedPlayers()),
		Duration:     time.Since(c.startTime),
	}
}
