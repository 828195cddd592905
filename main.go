package main

import (
	"context"
	"math/rand"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"conquest/bot"
	"conquest/config"
	"conquest/engine"
	"conquest/experiments/metrics"
	"conquest/game"
	"conquest/store"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	snapStore, closeStore := openStore(cfg)
	if closeStore != nil {
		defer closeStore()
	}
	if snapStore != nil && resumeMatch(snapStore, cfg.Seed) {
		return
	}

	roster, err := cfg.Competitors()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid roster")
	}

	var records []metrics.MatchRecord
	var last *game.Game
	for i := 0; i < cfg.Games; i++ {
		options := []engine.Option{engine.WithObserver(consoleObserver{})}
		seed := cfg.Seed
		if seed != 0 {
			seed += int64(i)
			options = append(options, engine.WithSeed(seed))
		}

		e, err := engine.New(roster, options...)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to set up match")
		}
		_, metric := e.Run()
		records = append(records, metrics.MatchRecord{ID: i + 1, Seed: seed, MatchMetric: metric})
		last = e.Game
	}

	if cfg.ResultsDir != "" {
		writer, err := metrics.NewWriter(cfg.ResultsDir)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create results dir")
		}
		if err := writer.WriteMatches(records); err != nil {
			log.Fatal().Err(err).Msg("failed to write results")
		}
		log.Info().Str("dir", writer.Dir()).Msg("results written")
	}

	if snapStore != nil && last != nil {
		saveSnapshot(snapStore, last)
	}
}

// openStore builds the configured snapshot store, if any, with an optional
// cleanup func.
func openStore(cfg config.Config) (store.SnapshotStore, func()) {
	switch {
	case cfg.RedisURL != "":
		rs, err := store.NewRedisStore(cfg.RedisURL, "latest")
		if err != nil {
			log.Error().Err(err).Msg("failed to connect snapshot store")
			return nil, nil
		}
		return rs, func() { rs.Close() }
	case cfg.SnapshotPath != "":
		return store.NewFileStore(cfg.SnapshotPath), nil
	}
	return nil, nil
}

// resumeMatch restores a previously saved game from the store and plays it
// to completion. It reports whether a saved game was handled; fresh matches
// run only when there was nothing to resume. Games involving a still-active
// human competitor cannot be driven here and are left untouched.
func resumeMatch(s store.SnapshotStore, seed int64) bool {
	snap, ok, err := s.Load(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("failed to load snapshot")
		return false
	}
	if !ok {
		return false
	}
	for _, p := range snap.Players {
		if !p.Automated && !p.Eliminated {
			log.Warn().Str("player", p.Name).Msg("saved game has a human competitor, starting fresh")
			return false
		}
	}

	g, err := game.RestoreGame(snap)
	if err != nil {
		log.Error().Err(err).Msg("saved snapshot is not playable")
		return false
	}
	if w, won := g.Winner(); won {
		log.Info().Str("winner", w.Name()).Msg("saved game is already over")
		return true
	}

	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}
	g.SetAgent(bot.New(rng, nil))
	g.AddObserver(consoleObserver{})

	log.Info().Str("current", g.Current().Name()).Msg("resuming saved game")
	g.RunAutomatedTurn()

	if w, won := g.Winner(); won {
		log.Info().Str("winner", w.Name()).Msg("resumed match over")
	}
	saveSnapshot(s, g)
	return true
}

// saveSnapshot persists the final game state.
func saveSnapshot(s store.SnapshotStore, g *game.Game) {
	if err := s.Save(context.Background(), g.Snapshot()); err != nil {
		log.Error().Err(err).Msg("failed to save snapshot")
		return
	}
	log.Info().Msg("final snapshot saved")
}

// consoleObserver forwards engine log lines to the structured logger.
type consoleObserver struct{}

func (consoleObserver) StateChanged(g *game.Game) {
	log.Debug().
		Stringer("phase", g.Phase()).
		Str("current", g.Current().Name()).
		Int("active", len(g.ActivePlayers())).
		Msg("state changed")
}

func (consoleObserver) LogLine(message string) {
	log.Info().Msg(message)
}
