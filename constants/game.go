package constants

import "time"

// Game Loop Timing Constants
const (
	// GameUpdateInterval is the game logic update interval (~30 Hz)
	GameUpdateInterval = 33 * time.Millisecond

	// FrameUpdateInterval is the terminal redraw interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)

// Round Timing Constants
const (
	// TotalGameTime is the countdown a player gets per session
	TotalGameTime = 30 * time.Second

	// FreezeDuration is how long the success frame stays on screen
	FreezeDuration = 3000 * time.Millisecond

	// FreezeCountdownSeconds is the countdown shown while frozen
	FreezeCountdownSeconds = 3

	// FlashDuration is how long the next-target announcement is shown
	FlashDuration = 250 * time.Millisecond

	// PauseCompensation is added to the game start once Flashing ends, so the
	// freeze and flash pauses never count against the player's countdown
	PauseCompensation = FreezeDuration + FlashDuration
)

// Scoring Constants
const (
	// ScoreIncrement is awarded per accepted color
	ScoreIncrement = 10
)
