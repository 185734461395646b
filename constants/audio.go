package constants

import "time"

// Success Sound Timing
const (
	SuccessNote1Duration = 80 * time.Millisecond
	SuccessNote2Duration = 280 * time.Millisecond
	SuccessSoundAttack   = 5 * time.Millisecond
	SuccessNote1Release  = 40 * time.Millisecond
	SuccessNote2Release  = 200 * time.Millisecond
)

// Announce Sound Timing
const (
	AnnounceSoundDuration = 120 * time.Millisecond
	AnnounceSoundAttack   = 5 * time.Millisecond
	AnnounceSoundRelease  = 60 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverNoteDuration = 220 * time.Millisecond
	GameOverSoundAttack  = 10 * time.Millisecond
	GameOverSoundRelease = 150 * time.Millisecond
)
