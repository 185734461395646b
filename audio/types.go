package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundSuccess  SoundType = iota // Color accepted
	SoundAnnounce                  // Next target shown
	SoundGameOver                  // Countdown ran out
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"success", "announce", "game_over"}

// String returns the sound's config key
func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the standard mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundSuccess:  0.8,
			SoundAnnounce: 0.5,
			SoundGameOver: 0.7,
		},
		SampleRate: 48000,
	}
}

// ErrAudioDisabled is returned by Initialize when audio is turned off in config
var ErrAudioDisabled = errors.New("audio disabled")
