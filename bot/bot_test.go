package bot

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"conquest/game"
)

// southAmericaGame builds a two-competitor game where Red holds exactly the
// four South American territories and Blue holds everything else.
func southAmericaGame(t *testing.T, redAutomated, blueAutomated bool) *game.Game {
	t.Helper()
	g, err := game.NewGame([]game.Competitor{
		{Name: "Red", Automated: redAutomated},
		{Name: "Blue", Automated: blueAutomated},
	}, game.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)

	s := g.Snapshot()
	for i := range s.Territories {
		if strings.HasPrefix(s.Territories[i].ID, "SA") {
			s.Territories[i].Owner = "Red"
		} else {
			s.Territories[i].Owner = "Blue"
		}
		s.Territories[i].Armies = 3
	}
	s.FirstTurn = false
	restored, err := game.RestoreGame(s)
	require.NoError(t, err)
	return restored
}

func TestPlacements(t *testing.T) {
	g := southAmericaGame(t, true, true)
	me := g.Current()
	require.Equal(t, "Red", me.Name())
	p := New(rand.New(rand.NewSource(3)), nil)

	toAdd := p.placements(g, me)

	// max(3, 4/3) base plus the South America bonus.
	total := 0
	frontier := make(map[string]bool)
	for _, terr := range me.LandWithEnemyNeighbor(g) {
		frontier[terr.ID()] = true
	}
	for id, amount := range toAdd {
		require.Positive(t, amount)
		require.True(t, frontier[id], "%s is not a frontier territory", id)
		total += amount
	}
	require.Equal(t, 5, total)
}

type fixedPrompt struct {
	answer int
}

func (f fixedPrompt) DefendArmies(*game.Territory) int { return f.answer }

func TestDefendArmies(t *testing.T) {
	g := southAmericaGame(t, true, false)
	defending, ok := g.Territory("EU1")
	require.True(t, ok)
	require.Equal(t, "Blue", defending.Owner().Name())

	t.Run("automated defenders commit the maximum", func(t *testing.T) {
		g := southAmericaGame(t, true, true)
		terr, _ := g.Territory("EU1")
		p := New(rand.New(rand.NewSource(3)), fixedPrompt{answer: 1})
		require.Equal(t, 2, p.defendArmies(terr))
	})

	t.Run("human defenders answer through the prompt", func(t *testing.T) {
		p := New(rand.New(rand.NewSource(3)), fixedPrompt{answer: 1})
		require.Equal(t, 1, p.defendArmies(defending))
	})

	t.Run("answers are clamped to the legal range", func(t *testing.T) {
		p := New(rand.New(rand.NewSource(3)), fixedPrompt{answer: 9})
		require.Equal(t, 2, p.defendArmies(defending))

		p = New(rand.New(rand.NewSource(3)), fixedPrompt{answer: 0})
		require.Equal(t, 1, p.defendArmies(defending))
	})

	t.Run("a lone army caps the automated commitment", func(t *testing.T) {
		g := southAmericaGame(t, true, true)
		terr, _ := g.Territory("EU1")
		terr.SetArmies(1)
		p := New(rand.New(rand.NewSource(3)), nil)
		require.Equal(t, 1, p.defendArmies(terr))
	})

	t.Run("nil prompt falls back to the maximum", func(t *testing.T) {
		p := New(rand.New(rand.NewSource(3)), nil)
		require.Equal(t, 2, p.defendArmies(defending))
	})
}

func TestTakeTurn(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		g := southAmericaGame(t, true, true)
		p := New(rand.New(rand.NewSource(seed)), nil)
		before := g.Current()

		p.TakeTurn(g)

		if _, won := g.Winner(); won {
			continue
		}
		require.NotSame(t, before, g.Current(), "seed %d: turn did not advance", seed)

		// Every garrison keeps its floor and the ownership index stays
		// consistent, checked by restoring the resulting snapshot.
		_, err := game.RestoreGame(g.Snapshot())
		require.NoError(t, err, "seed %d", seed)
	}
}
