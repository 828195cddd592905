// Package config loads runner configuration from environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"conquest/game"
)

// Config controls the bot-match runner.
type Config struct {
	// Roster is a comma-separated competitor list; append ":human" to an
	// entry to mark it human-controlled (e.g. "Alice:human,Bravo,Charlie").
	Roster string `env:"ROSTER" envDefault:"Alpha,Bravo,Charlie"`
	// Seed fixes the random source; 0 means time-seeded.
	Seed int64 `env:"SEED" envDefault:"0"`
	// Games is the number of matches to run.
	Games int `env:"GAMES" envDefault:"1"`
	// LogLevel is a zerolog level name.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// SnapshotPath, when set, saves the final game snapshot to this file.
	SnapshotPath string `env:"SNAPSHOT_PATH"`
	// RedisURL, when set, saves the final snapshot to Redis instead.
	RedisURL string `env:"REDIS_URL"`
	// ResultsDir, when set, writes per-match CSV results under it.
	ResultsDir string `env:"RESULTS_DIR"`
}

// Load parses the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Competitors expands the roster string into competitor entries.
func (c Config) Competitors() ([]game.Competitor, error) {
	var roster []game.Competitor
	for _, entry := range strings.Split(c.Roster, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, kind, hasKind := strings.Cut(entry, ":")
		automated := true
		if hasKind {
			switch strings.ToLower(kind) {
			case "human":
				automated = false
			case "bot", "ai":
				automated = true
			default:
				return nil, fmt.Errorf("unknown competitor kind %q in %q", kind, entry)
			}
		}
		roster = append(roster, game.Competitor{Name: name, Automated: automated})
	}
	return roster, nil
}
