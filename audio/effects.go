package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/colorhunt/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	return &oscillator{
		freq:     freq,
		phase:    0,
		duration: samples,
		position: 0,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an ADSR envelope (simplified to just attack/release)
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		position:       0,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateSuccessSound generates a rising two-note chime for an accepted color
func CreateSuccessSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// First note (C6)
	n1 := NewOscillator(1046.5, constants.SuccessNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.SuccessNote1Duration, constants.SuccessSoundAttack, constants.SuccessNote1Release, rate)

	// Second note (G6)
	n2 := NewOscillator(1568.0, constants.SuccessNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.SuccessNote2Duration, constants.SuccessSoundAttack, constants.SuccessNote2Release, rate)

	sequence := beep.Seq(n1Shaped, n2Shaped)

	vol := cfg.EffectVolumes[SoundSuccess] * cfg.MasterVolume
	return newVolume(sequence, vol)
}

// CreateAnnounceSound generates a short ping with an octave overtone for the next target
func CreateAnnounceSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Fundamental (E5)
	var fund beep.Streamer
	if tone, err := generators.SineTone(rate, 659.25); err == nil {
		fund = beep.Take(rate.N(constants.AnnounceSoundDuration), tone)
	} else {
		fund = NewOscillator(659.25, constants.AnnounceSoundDuration, WaveSine, rate)
	}
	fundShaped := NewEnvelope(fund, constants.AnnounceSoundDuration, constants.AnnounceSoundAttack, constants.AnnounceSoundRelease, rate)

	over := NewOscillator(1318.51, constants.AnnounceSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, constants.AnnounceSoundDuration, constants.AnnounceSoundAttack, constants.AnnounceSoundRelease/2, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)

	vol := cfg.EffectVolumes[SoundAnnounce] * cfg.MasterVolume
	return newVolume(mixed, vol)
}

// CreateGameOverSound generates a descending three-note phrase
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// A4, F4, C4
	freqs := []float64{440.0, 349.23, 261.63}
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		osc := NewOscillator(f, constants.GameOverNoteDuration, WaveSaw, rate)
		notes = append(notes, NewEnvelope(osc, constants.GameOverNoteDuration, constants.GameOverSoundAttack, constants.GameOverSoundRelease, rate))
	}

	vol := cfg.EffectVolumes[SoundGameOver] * cfg.MasterVolume
	return newVolume(beep.Seq(notes...), vol)
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundSuccess:
		return CreateSuccessSound(cfg)
	case SoundAnnounce:
		return CreateAnnounceSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
