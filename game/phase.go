package game

// Phase is the current stage of a competitor's turn. The engine keeps it
// purely data-level; collaborators interpret it to decide which affordances
// to enable.
type Phase int

const (
	// PhasePlace: armies are being placed.
	PhasePlace Phase = iota
	// PhaseAttack: a battle is being resolved.
	PhaseAttack
	// PhaseAutomated: an automated competitor's turn is in progress and
	// human input should be disabled.
	PhaseAutomated
	// PhaseTurnComplete: the acting competitor's turn has ended and the
	// pointer has advanced.
	PhaseTurnComplete
	// PhaseAwaitingAck: an automated chain has handed control back to a
	// human competitor.
	PhaseAwaitingAck
)

var phaseNames = map[Phase]string{
	PhasePlace:        "place",
	PhaseAttack:       "attack",
	PhaseAutomated:    "automated",
	PhaseTurnComplete: "turn-complete",
	PhaseAwaitingAck:  "awaiting-ack",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}
