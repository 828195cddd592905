package game

// Observer receives engine notifications after every mutating operation.
// Implementations must treat the game as read-only.
type Observer interface {
	// StateChanged is invoked after any phase-affecting operation.
	StateChanged(g *Game)
	// LogLine receives a human-readable description of what happened.
	LogLine(message string)
}

// DefendPrompt supplies the defending army count when an automated attack
// targets a human-controlled territory. Implementations return a value in
// [1, 2]; the policy clamps it to the defender's actual army count.
type DefendPrompt interface {
	DefendArmies(defending *Territory) int
}

// Agent drives one full automated turn for the current competitor. The game
// invokes it back-to-back while automated competitors hold the turn.
type Agent interface {
	TakeTurn(g *Game)
}
