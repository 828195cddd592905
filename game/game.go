package game

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"conquest/utils"
)

// MaxNameLength bounds competitor display names.
const MaxNameLength = 15

// Competitor describes one entrant before the game is initialized.
type Competitor struct {
	Name      string
	Automated bool
}

// Game is the turn/phase state machine. It owns all mutable state (territory
// ownership and armies, the competitor ledger, the current phase) and is
// driven synchronously by whichever caller currently holds control; it has no
// internal synchronization, so concurrent callers must serialize access.
type Game struct {
	active     []*Player
	eliminated []*Player
	continents map[string]*Continent
	current    *Player
	phase      Phase
	firstTurn  bool

	observers []Observer
	agent     Agent
	rules     Rules
	rng       *rand.Rand
}

// Option configures a new game.
type Option func(*Game)

// WithRand injects the random source used for distribution and dice rolls.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithRules overrides the standard battle rules.
func WithRules(rules Rules) Option {
	return func(g *Game) {
		if rules != nil {
			g.rules = rules
		}
	}
}

// NewGame validates the roster, builds the world, and runs the one-shot
// distribution of territories and armies. The first competitor in roster
// order becomes the current competitor and the phase is set to placement.
func NewGame(roster []Competitor, options ...Option) (*Game, error) {
	g := newBareGame(options...)

	if len(roster) < 2 || len(roster) > 6 {
		return nil, fmt.Errorf("game supports 2 to 6 competitors, got %d", len(roster))
	}
	seen := make(map[string]bool, len(roster))
	for _, c := range roster {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("competitor name must not be blank")
		}
		if len(name) > MaxNameLength {
			return nil, fmt.Errorf("competitor name %q exceeds %d characters", name, MaxNameLength)
		}
		lower := strings.ToLower(name)
		if seen[lower] {
			return nil, fmt.Errorf("competitor name %q is already used", name)
		}
		seen[lower] = true
		g.active = append(g.active, newPlayer(name, c.Automated))
	}

	g.distribute()
	g.current = g.active[0]
	g.phase = PhasePlace
	return g, nil
}

func newBareGame(options ...Option) *Game {
	g := &Game{
		continents: buildWorld(),
		firstTurn:  true,
		rules:      StandardRules{},
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, option := range options {
		option(g)
	}
	return g
}

// AddObserver registers a collaborator to be notified after every mutating
// operation.
func (g *Game) AddObserver(o Observer) {
	g.observers = append(g.observers, o)
}

// SetAgent installs the automated decision policy invoked for automated
// competitors' turns.
func (g *Game) SetAgent(a Agent) {
	g.agent = a
}

// Territory looks up a territory by its full ID. Malformed or unknown IDs
// yield an empty result, never an error; the call has no side effects.
func (g *Game) Territory(id string) (*Territory, bool) {
	if len(id) < 3 {
		return nil, false
	}
	continent, ok := g.continents[id[:2]]
	if !ok {
		return nil, false
	}
	index := 0
	for _, ch := range id[2:] {
		if ch < '0' || ch > '9' {
			return nil, false
		}
		index = index*10 + int(ch-'0')
	}
	return continent.byIndex(index - 1)
}

// Continents returns the continent registry in fixed world order.
func (g *Game) Continents() []*Continent {
	out := make([]*Continent, 0, len(g.continents))
	for _, def := range continentOrder {
		out = append(out, g.continents[def.code])
	}
	return out
}

// Continent returns the continent with the given two-letter code.
func (g *Game) Continent(code string) (*Continent, bool) {
	c, ok := g.continents[code]
	return c, ok
}

// ActivePlayers returns the active competitor ledger in turn order.
func (g *Game) ActivePlayers() []*Player {
	out := make([]*Player, len(g.active))
	copy(out, g.active)
	return out
}

// EliminatedPlayers returns competitors removed from the ledger, in
// elimination order. They remain referenceable for end-of-game reporting.
func (g *Game) EliminatedPlayers() []*Player {
	out := make([]*Player, len(g.eliminated))
	copy(out, g.eliminated)
	return out
}

// Current returns the acting competitor.
func (g *Game) Current() *Player { return g.current }

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// FirstTurn reports whether no competitor has finished an action yet.
func (g *Game) FirstTurn() bool { return g.firstTurn }

// Winner returns the last competitor standing once all others have been
// eliminated.
func (g *Game) Winner() (*Player, bool) {
	if len(g.active) == 1 {
		return g.active[0], true
	}
	return nil, false
}

// Place adds armies to the competitor's territories according to the
// allocation map (territory ID to amount). Invalid or unknown IDs are
// silently skipped; this tolerant contract lets callers pass through raw
// input without pre-validation.
func (g *Game) Place(allocation map[string]int) {
	g.phase = PhasePlace
	for id, amount := range allocation {
		t, ok := g.Territory(id)
		if !ok {
			continue
		}
		t.AddArmy(amount)
		g.logf("%s has placed %d armies into %s which now has %d armies",
			t.owner.name, amount, t.name, t.armies)
	}
	g.notifyState()
}

// Move transfers armies between two territories and ends the acting
// competitor's turn. If the source cannot spare the armies nothing changes,
// a diagnostic line is emitted, and the turn does not advance.
func (g *Game) Move(count int, from, to *Territory) bool {
	if !from.RemoveArmy(count) {
		g.logf("%s cannot move %d armies out of %s: at least one army must stay behind",
			from.owner.name, count, from.name)
		return false
	}
	to.AddArmy(count)
	g.logf("%s has moved %d armies from %s to %s", from.owner.name, count, from.name, to.name)
	g.logf("Move phase is over")

	if g.firstTurn && g.current.automated {
		g.Done()
	} else {
		g.PassTurn()
	}
	return true
}

// Attack resolves one battle round between two territories. It returns true
// when the defender lost its last army: the territory is conquered and the
// caller must complete the transfer with AttackWon. Dice counts are the
// callers' responsibility to cap (attacker 3, defender 2 under standard
// rules).
func (g *Game) Attack(attacking *Territory, attackArmies int, defending *Territory, defendArmies int) bool {
	g.phase = PhaseAttack

	attackRolls, defendRolls, attackerLosses, defenderLosses :=
		ResolveBattle(g.rng, g.rules, attackArmies, defendArmies)

	g.logf("%s is attacking %s with %s!", attacking.owner.name, defending.name, attacking.name)
	g.logf("Attacker rolled %d dice: %v", len(attackRolls), attackRolls)
	g.logf("Defender rolled %d dice: %v", len(defendRolls), defendRolls)

	if !defending.RemoveArmy(defenderLosses) {
		// Defender would drop below one army: full conquest.
		return true
	}
	attacking.RemoveArmy(attackerLosses)
	g.logf("The attacking territory lost %d unit(s)! It has %d unit(s) left.",
		attackerLosses, attacking.armies)
	g.logf("The defending territory lost %d unit(s)! It has %d unit(s) left.",
		defenderLosses, defending.armies)
	g.notifyState()
	return false
}

// AttackWon completes a conquest: ownership of the defending territory moves
// to the attacker, the moved armies (at least 1, enforced by the caller)
// leave the attacking territory and become the defender's new garrison. When
// the defeated competitor holds nothing it is removed from the ledger, and if
// exactly one competitor remains the game is over, reported by the return
// value.
func (g *Game) AttackWon(attacking, defending *Territory, armies int) bool {
	g.phase = PhaseAttack

	defender := defending.owner
	g.transferOwnership(defending, attacking.owner)
	attacking.RemoveArmy(armies)
	defending.SetArmies(armies)
	g.logf("The defending territory lost all units and was conquered by %s!", attacking.owner.name)
	g.logf("%d armies were transferred to conquered land", armies)

	if defender.OwnedCount() == 0 {
		g.logf("%s has lost all their territories! They have been eliminated.", defender.name)
		g.removePlayer(defender)
		if len(g.active) == 1 {
			g.notifyState()
			return true
		}
	}
	g.notifyState()
	return false
}

// PassTurn ends the acting competitor's turn and advances the pointer
// circularly through the active ledger.
func (g *Game) PassTurn() {
	g.phase = PhaseTurnComplete
	g.logf("%s has ended their turn", g.current.name)
	index := utils.FindIndex(g.active, g.current)
	if index < 0 {
		panic("game: current competitor missing from active ledger")
	}
	g.current = g.active[(index+1)%len(g.active)]
	g.notifyState()
}

// Done marks the first turn as over, advances the turn, and runs automated
// turns back-to-back until a human-controlled competitor becomes current or
// the game ends. When control lands on a human after an automated chain, the
// phase is set to PhaseAwaitingAck so collaborators can re-enable input.
func (g *Game) Done() {
	g.firstTurn = false
	g.PassTurn()
	chained := false
	for g.current.automated && len(g.active) > 1 && g.agent != nil {
		chained = true
		g.agent.TakeTurn(g)
	}
	if chained && len(g.active) > 1 && !g.current.automated {
		g.phase = PhaseAwaitingAck
		g.notifyState()
	}
}

// RunAutomatedTurn hands control to the automated policy when the current
// competitor is automated. Callers use it once after initialization when the
// starting competitor is machine-controlled; subsequent chaining happens
// through Done.
func (g *Game) RunAutomatedTurn() {
	if g.agent == nil || !g.current.automated {
		return
	}
	g.agent.TakeTurn(g)
}

// BeginAutomatedTurn marks the phase as automated-in-progress so observers
// can disable input affordances for the duration of the chain.
func (g *Game) BeginAutomatedTurn() {
	g.phase = PhaseAutomated
	g.notifyState()
}

// transferOwnership is the single mutation point for the Territory.owner and
// Player.owned pair, keeping both views consistent.
func (g *Game) transferOwnership(t *Territory, to *Player) {
	if t.owner != nil {
		delete(t.owner.owned, t.id)
	}
	t.owner = to
	if to != nil {
		to.owned[t.id] = t
	}
}

func (g *Game) removePlayer(p *Player) {
	g.active = utils.Remove(g.active, p)
	g.eliminated = append(g.eliminated, p)
}

func (g *Game) notifyState() {
	for _, o := range g.observers {
		o.StateChanged(g)
	}
}

func (g *Game) logf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	for _, o := range g.observers {
		o.LogLine(line)
	}
}
