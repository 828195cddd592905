// Package engine wires a game to its automated policy and runs all-bot
// matches to completion.
package engine

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog/log"

	"conquest/bot"
	"conquest/experiments/metrics"
	"conquest/game"
)

// Engine drives a single all-automated match. Once Run starts the automated
// chain there is no internal suspension point; it returns when one
// competitor holds the entire map.
type Engine struct {
	Game *game.Game

	collector *metrics.Collector
}

// Option configures an engine.
type Option func(*config)

type config struct {
	seed      int64
	seeded    bool
	observers []game.Observer
}

// WithSeed fixes the random source for a reproducible match.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithObserver registers an extra observer on the underlying game.
func WithObserver(o game.Observer) Option {
	return func(c *config) {
		c.observers = append(c.observers, o)
	}
}

// New initializes a match between automated competitors. Every roster entry
// must be automated; human competitors need an interactive collaborator the
// engine does not provide.
func New(roster []game.Competitor, options ...Option) (*Engine, error) {
	cfg := &config{}
	for _, option := range options {
		option(cfg)
	}
	for _, c := range roster {
		if !c.Automated {
			return nil, fmt.Errorf("competitor %q is not automated", c.Name)
		}
	}

	var rng *rand.Rand
	if cfg.seeded {
		rng = rand.New(rand.NewSource(cfg.seed))
	}

	g, err := game.NewGame(roster, game.WithRand(rng))
	if err != nil {
		return nil, err
	}
	g.SetAgent(bot.New(rng, nil))

	collector := metrics.NewCollector()
	g.AddObserver(collector)
	for _, o := range cfg.observers {
		g.AddObserver(o)
	}

	return &Engine{Game: g, collector: collector}, nil
}

// Run executes the match until one competitor remains and returns the winner
// with the match counters.
func (e *Engine) Run() (string, metrics.MatchMetric) {
	log.Info().Str("player", e.Game.Current().Name()).Msg("match starting")

	e.Game.RunAutomatedTurn()

	metric := e.collector.Complete(e.Game)
	log.Info().
		Str("winner", metric.Winner).
		Int("turns", metric.Turns).
		Int("battles", metric.Battles).
		Msg("match over")
	return metric.Winner, metric
}
