package engine

// Phase identifies the top-level state the game is in. Exactly one phase
// is active at a time and every transition goes through Game.setPhase,
// which rejects edges not listed in phaseEdges.
type Phase int

const (
	// PhaseTitle is the start screen shown before any run.
	PhaseTitle Phase = iota
	// PhaseHub is the between-run screen: profile stats and permanent upgrades.
	PhaseHub
	// PhasePlaying is the live simulation.
	PhasePlaying
	// PhasePaused freezes the simulation, entered from PhasePlaying only.
	PhasePaused
	// PhaseLevelUp suspends the simulation while the player picks an upgrade.
	PhaseLevelUp
	// PhaseSummary shows the end-of-run report, after death or extraction.
	PhaseSummary
)

func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhaseHub:
		return "hub"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseLevelUp:
		return "levelup"
	case PhaseSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// phaseEdges lists the legal phase transitions. A transition not present
// here indicates a driver bug and is dropped with a status counter rather
// than corrupting the state machine.
var phaseEdges = map[Phase][]Phase{
	PhaseTitle:   {PhaseHub},
	PhaseHub:     {PhasePlaying, PhaseTitle},
	PhasePlaying: {PhasePaused, PhaseLevelUp, PhaseSummary},
	PhasePaused:  {PhasePlaying, PhaseSummary},
	PhaseLevelUp: {PhasePlaying, PhaseSummary},
	PhaseSummary: {PhaseHub},
}

func phaseAllowed(from, to Phase) bool {
	for _, next := range phaseEdges[from] {
		if next == to {
			return true
		}
	}
	return false
}
