package engine

import (
	"time"

	"github.com/lixenwraith/colorhunt/core"
)

// validTransitions lists each phase's successors
// A success always runs Analyzing -> Frozen -> Flashing -> Analyzing
var validTransitions = map[core.GamePhase][]core.GamePhase{
	core.PhaseAnalyzing: {core.PhaseFrozen, core.PhaseGameOver},
	core.PhaseFrozen:    {core.PhaseFlashing},
	core.PhaseFlashing:  {core.PhaseAnalyzing},
	core.PhaseGameOver:  {core.PhaseAnalyzing},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to core.GamePhase) bool {
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}

// Transition records one phase change for observers
type Transition struct {
	From, To core.GamePhase
	At       time.Time
	Target   core.Target
	Score    int
	Accuracy float64
	Reset    bool
}
