// Package experiments runs batches of bot matches to evaluate policy balance
// and records the results as CSV.
package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"conquest/engine"
	"conquest/experiments/metrics"
	"conquest/game"
)

// DefaultRoster is the four-bot lineup used when no roster is supplied.
var DefaultRoster = []game.Competitor{
	{Name: "Alpha", Automated: true},
	{Name: "Bravo", Automated: true},
	{Name: "Charlie", Automated: true},
	{Name: "Delta", Automated: true},
}

// RunBotMatches plays numGames matches of the given roster, deriving each
// match's seed from baseSeed, and returns one record per game.
func RunBotMatches(numGames int, roster []game.Competitor, baseSeed uint64) ([]metrics.MatchRecord, error) {
	if len(roster) == 0 {
		roster = DefaultRoster
	}
	seeds := rand.New(rand.NewSource(baseSeed))

	records := make([]metrics.MatchRecord, 0, numGames)
	for i := 0; i < numGames; i++ {
		seed := int64(seeds.Uint64() >> 1)
		e, err := engine.New(roster, engine.WithSeed(seed))
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", i+1, err)
		}

		log.Info().Int("game", i+1).Int64("seed", seed).Msg("starting match")
		winner, metric := e.Run()
		log.Info().Int("game", i+1).Str("winner", winner).Msg("finished match")

		records = append(records, metrics.MatchRecord{ID: i + 1, Seed: seed, MatchMetric: metric})
	}
	return records, nil
}

// RunAndWrite plays the matches and persists the results under dir.
func RunAndWrite(numGames int, roster []game.Competitor, baseSeed uint64, dir string) error {
	records, err := RunBotMatches(numGames, roster, baseSeed)
	if err != nil {
		return err
	}
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return err
	}
	if err := writer.WriteMatches(records); err != nil {
		return err
	}
	log.Info().Str("dir", writer.Dir()).Int("games", len(records)).Msg("wrote experiment results")
	return nil
}
