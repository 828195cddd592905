package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// MatchRecord ties a MatchMetric to its position in an experiment run.
type MatchRecord struct {
	ID   int
	Seed int64
	MatchMetric
}

// Writer persists experiment results as CSV files under a timestamped
// directory.
type Writer struct {
	baseDir string
}

func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create experiment directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// Dir returns the directory this writer saves into.
func (w *Writer) Dir() string { return w.baseDir }

// WriteMatches writes one row per completed game.
func (w *Writer) WriteMatches(records []MatchRecord) error {
	path := filepath.Join(w.baseDir, "matches.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create matches file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "seed", "winner", "turns", "battles", "conquests", "eliminations", "duration_ms"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.ID),
			strconv.FormatInt(r.Seed, 10),
			r.Winner,
			strconv.Itoa(r.Turns),
			strconv.Itoa(r.Battles),
			strconv.Itoa(r.Conquests),
			strconv.Itoa(r.Eliminations),
			strconv.FormatInt(r.Duration.Milliseconds(), 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write record %d: %w", r.ID, err)
		}
	}
	return writer.Error()
}
