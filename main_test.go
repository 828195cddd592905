package main

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"conquest/game"
	"conquest/store"
)

func savedGame(t *testing.T, roster []game.Competitor) (*store.FileStore, game.Snapshot) {
	t.Helper()
	g, err := game.NewGame(roster, game.WithRand(rand.New(rand.NewSource(5))))
	require.NoError(t, err)

	s := store.NewFileStore(filepath.Join(t.TempDir(), "snapshot.json"))
	snap := g.Snapshot()
	require.NoError(t, s.Save(context.Background(), snap))
	return s, snap
}

func TestResumeMatch(t *testing.T) {
	t.Run("plays a saved all-bot game to completion", func(t *testing.T) {
		s, _ := savedGame(t, []game.Competitor{
			{Name: "Alpha", Automated: true},
			{Name: "Bravo", Automated: true},
		})

		require.True(t, resumeMatch(s, 5))

		snap, ok, err := s.Load(context.Background())
		require.NoError(t, err)
		require.True(t, ok)
		finished, err := game.RestoreGame(snap)
		require.NoError(t, err)
		w, won := finished.Winner()
		require.True(t, won)
		require.Equal(t, 42, w.OwnedCount())
	})

	t.Run("reports nothing to resume on an empty store", func(t *testing.T) {
		s := store.NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
		require.False(t, resumeMatch(s, 5))
	})

	t.Run("leaves a game with a human competitor alone", func(t *testing.T) {
		s, saved := savedGame(t, []game.Competitor{
			{Name: "Alice", Automated: false},
			{Name: "Bravo", Automated: true},
		})

		require.False(t, resumeMatch(s, 5))

		snap, ok, err := s.Load(context.Background())
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, saved, snap)
	})
}
