package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// fullBoard returns territory states for the whole world: every territory
// held by defaultOwner with one army, except for the overridden entries.
func fullBoard(defaultOwner string, overrides map[string]TerritoryState) []TerritoryState {
	var out []TerritoryState
	for id := range adjacencyData {
		ts := TerritoryState{ID: id, Owner: defaultOwner, Armies: 1}
		if o, ok := overrides[id]; ok {
			if o.Owner != "" {
				ts.Owner = o.Owner
			}
			if o.Armies != 0 {
				ts.Armies = o.Armies
			}
		}
		out = append(out, ts)
	}
	return out
}

func restore(t *testing.T, s Snapshot, options ...Option) *Game {
	t.Helper()
	g, err := RestoreGame(s, options...)
	require.NoError(t, err)
	return g
}

func twoCompetitorGame(t *testing.T, overrides map[string]TerritoryState, options ...Option) *Game {
	t.Helper()
	// Blue needs at least one territory to be a playable active competitor;
	// tests exercising elimination assign AU4 to Red explicitly.
	if _, ok := overrides["AU4"]; !ok {
		if overrides == nil {
			overrides = map[string]TerritoryState{}
		}
		overrides["AU4"] = TerritoryState{Owner: "Blue"}
	}
	return restore(t, Snapshot{
		Players: []PlayerState{
			{Name: "Red"},
			{Name: "Blue"},
		},
		Territories: fullBoard("Red", overrides),
		Current:     "Red",
		Phase:       PhasePlace,
	}, options...)
}

func TestPlace(t *testing.T) {
	g := twoCompetitorGame(t, map[string]TerritoryState{
		"NA1": {Armies: 5},
	})

	g.Place(map[string]int{
		"NA1":  3,
		"SA2":  2,
		"XX9":  7, // unknown continent, skipped
		"NA99": 7, // out of range, skipped
		"":     7,
	})

	na1, _ := g.Territory("NA1")
	require.Equal(t, 8, na1.Armies())
	sa2, _ := g.Territory("SA2")
	require.Equal(t, 3, sa2.Armies())
	require.Equal(t, PhasePlace, g.Phase())
	require.Equal(t, "Red", g.Current().Name())
}

func TestMove(t *testing.T) {
	t.Run("transfers armies and ends the turn", func(t *testing.T) {
		g := twoCompetitorGame(t, map[string]TerritoryState{
			"NA1": {Armies: 5},
		})
		from, _ := g.Territory("NA1")
		to, _ := g.Territory("NA2")

		require.True(t, g.Move(3, from, to))
		require.Equal(t, 2, from.Armies())
		require.Equal(t, 4, to.Armies())
		require.Equal(t, "Blue", g.Current().Name())
		require.Equal(t, PhaseTurnComplete, g.Phase())
	})

	t.Run("refuses to empty the source and keeps the turn", func(t *testing.T) {
		g := twoCompetitorGame(t, map[string]TerritoryState{
			"NA1": {Armies: 5},
		})
		from, _ := g.Territory("NA1")
		to, _ := g.Territory("NA2")

		require.False(t, g.Move(5, from, to))
		require.Equal(t, 5, from.Armies())
		require.Equal(t, 1, to.Armies())
		require.Equal(t, "Red", g.Current().Name())
	})
}

func TestAttack(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g := twoCompetitorGame(t, map[string]TerritoryState{
		"NA1": {Armies: 30},
		"NA2": {Owner: "Blue", Armies: 1},
	}, WithRand(rng))
	attacking, _ := g.Territory("NA1")
	defending, _ := g.Territory("NA2")

	conquered := false
	for round := 0; round < 200 && !conquered; round++ {
		conquered = g.Attack(attacking, 3, defending, 1)
		require.GreaterOrEqual(t, attacking.Armies(), 1)
		require.GreaterOrEqual(t, defending.Armies(), 1)
	}
	require.True(t, conquered, "a lone defender cannot hold out forever")
	// Conquest is reported, not applied: the caller completes it.
	require.Equal(t, "Blue", defending.Owner().Name())
	require.Equal(t, 1, defending.Armies())
	require.Equal(t, PhaseAttack, g.Phase())
}

func TestAttackWon(t *testing.T) {
	t.Run("moves ownership and garrison", func(t *testing.T) {
		g := twoCompetitorGame(t, map[string]TerritoryState{
			"NA1": {Armies: 10},
			"NA2": {Owner: "Blue", Armies: 2},
			"NA3": {Owner: "Blue", Armies: 2},
		})
		attacking, _ := g.Territory("NA1")
		defending, _ := g.Territory("NA2")

		gameOver := g.AttackWon(attacking, defending, 3)
		require.False(t, gameOver)
		require.Equal(t, "Red", defending.Owner().Name())
		require.Equal(t, 3, defending.Armies())
		require.Equal(t, 7, attacking.Armies())
		require.Len(t, g.ActivePlayers(), 2)
	})

	t.Run("eliminates the defender and ends the game", func(t *testing.T) {
		g := twoCompetitorGame(t, map[string]TerritoryState{
			"NA1": {Armies: 10},
			"NA2": {Owner: "Blue", Armies: 2},
			"AU4": {Owner: "Red"},
		})
		attacking, _ := g.Territory("NA1")
		defending, _ := g.Territory("NA2")

		gameOver := g.AttackWon(attacking, defending, 3)
		require.True(t, gameOver)

		winner, ok := g.Winner()
		require.True(t, ok)
		require.Equal(t, "Red", winner.Name())
		require.Len(t, g.EliminatedPlayers(), 1)
		require.Equal(t, "Blue", g.EliminatedPlayers()[0].Name())
		require.Equal(t, 0, g.EliminatedPlayers()[0].OwnedCount())
		require.Equal(t, 42, winner.OwnedCount())
	})
}

func TestPassTurn(t *testing.T) {
	g := restore(t, Snapshot{
		Players: []PlayerState{
			{Name: "Red"},
			{Name: "Blue"},
			{Name: "Green"},
		},
		Territories: fullBoard("Red", map[string]TerritoryState{
			"AU3": {Owner: "Blue"},
			"AU4": {Owner: "Green"},
		}),
		Current: "Red",
		Phase:   PhasePlace,
	})

	g.PassTurn()
	require.Equal(t, "Blue", g.Current().Name())
	g.PassTurn()
	require.Equal(t, "Green", g.Current().Name())
	g.PassTurn()
	require.Equal(t, "Red", g.Current().Name())
	require.Equal(t, PhaseTurnComplete, g.Phase())
}

// passingAgent ends each automated turn immediately.
type passingAgent struct {
	turns int
}

func (a *passingAgent) TakeTurn(g *Game) {
	a.turns++
	g.PassTurn()
}

func TestDone(t *testing.T) {
	t.Run("chains automated turns and pauses for the human", func(t *testing.T) {
		g := restore(t, Snapshot{
			Players: []PlayerState{
				{Name: "Red"},
				{Name: "Bot A", Automated: true},
				{Name: "Bot B", Automated: true},
			},
			Territories: fullBoard("Red", map[string]TerritoryState{
				"NA1": {Owner: "Bot A"},
				"NA2": {Owner: "Bot B"},
			}),
			Current:   "Red",
			Phase:     PhaseTurnComplete,
			FirstTurn: true,
		})
		agent := &passingAgent{}
		g.SetAgent(agent)

		g.Done()

		require.False(t, g.FirstTurn())
		require.Equal(t, 2, agent.turns)
		require.Equal(t, "Red", g.Current().Name())
		require.Equal(t, PhaseAwaitingAck, g.Phase())
	})

	t.Run("does not pause when no automated turn ran", func(t *testing.T) {
		g := twoCompetitorGame(t, nil)
		g.SetAgent(&passingAgent{})

		g.Done()

		require.Equal(t, "Blue", g.Current().Name())
		require.Equal(t, PhaseTurnComplete, g.Phase())
	})
}

// recordingObserver captures notifications for assertions.
type recordingObserver struct {
	states int
	lines  []string
}

func (r *recordingObserver) StateChanged(*Game)  { r.states++ }
func (r *recordingObserver) LogLine(line string) { r.lines = append(r.lines, line) }

func TestObserverNotifications(t *testing.T) {
	g := twoCompetitorGame(t, map[string]TerritoryState{
		"NA1": {Armies: 5},
	})
	rec := &recordingObserver{}
	g.AddObserver(rec)

	g.Place(map[string]int{"NA1": 2, "SA1": 1})
	require.Equal(t, 1, rec.states)
	require.Len(t, rec.lines, 2)

	from, _ := g.Territory("NA1")
	to, _ := g.Territory("NA2")
	require.True(t, g.Move(2, from, to))
	require.Greater(t, rec.states, 1)
	require.Contains(t, rec.lines, "Move phase is over")
}
