package constants

// HUD text
const (
	TextTargetPrefix   = "TARGET: "
	TextScorePrefix    = "SCORE: "
	TextTimePrefix     = "TIME: "
	TextAccuracyFormat = "Accuracy: %%%.1f"
	TextExcellent      = "EXCELLENT!"
	TextAccepted       = "COLOR ACCEPTED!"
	TextNextTargetIn   = "NEXT TARGET IN: "
	TextNextTask       = "NEXT TASK:"
	TextGameOver       = "GAME OVER!"
	TextTotalScore     = "TOTAL SCORE: "
	TextPressStart     = "PRESS ENTER TO START"
	TextRestartHint    = "ENTER: restart  Q: quit"
)

// Synthetic camera layout
const (
	// SyntheticFrameWidth and SyntheticFrameHeight match a typical low-res webcam
	SyntheticFrameWidth  = 320
	SyntheticFrameHeight = 240

	// SyntheticCardSize is the initial side of the player-held card
	SyntheticCardSize = 80

	// SyntheticCardStep is the move/resize step per key press
	SyntheticCardStep = 8

	// SyntheticNoise is the max per-channel background noise amplitude
	SyntheticNoise = 12
)
