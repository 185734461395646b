package core

// GamePhase is the active stage of a round
type GamePhase uint8

const (
	// PhaseAnalyzing samples frames and judges them against the target
	PhaseAnalyzing GamePhase = iota
	// PhaseFrozen holds the success frame for the freeze duration
	PhaseFrozen
	// PhaseFlashing announces the next target
	PhaseFlashing
	// PhaseGameOver shows the final score until reset
	PhaseGameOver
)

var phaseNames = [...]string{"Analyzing", "Frozen", "Flashing", "GameOver"}

func (p GamePhase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "Unknown"
}
