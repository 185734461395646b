package engine

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/colorhunt/constants"
	"github.com/lixenwraith/colorhunt/core"
	"github.com/lixenwraith/colorhunt/status"
)

// SourceOpener acquires the capture source for a session
type SourceOpener func() (FrameSource, error)

// Cues receives audio cues on phase changes; calls must not block
type Cues interface {
	PlaySuccess()
	PlayAnnounce()
	PlayGameOver()
}

// SessionConfig holds everything a session needs besides its collaborators
type SessionConfig struct {
	Game         GameConfig
	TickInterval time.Duration
	Picker       *core.Picker
	Clock        TimeProvider
}

// Session owns one acquisition run: the capture source, game state and scheduler
type Session struct {
	ID     string
	logger zerolog.Logger

	source    FrameSource
	state     *GameState
	scheduler *ClockScheduler
	cues      Cues

	statSuccesses *atomic.Int64
	stopOnce      sync.Once
}

// NewSession opens the source and builds the game; nothing is created if the source fails
func NewSession(
	cfg SessionConfig,
	open SourceOpener,
	handoff *IntentHandoff,
	statusReg *status.Registry,
	cues Cues,
	logger zerolog.Logger,
) (*Session, error) {
	source, err := open()
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	if cfg.Clock == nil {
		cfg.Clock = NewMonotonicTimeProvider()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = constants.GameUpdateInterval
	}
	if statusReg == nil {
		statusReg = status.NewRegistry()
	}

	id := uuid.NewString()
	s := &Session{
		ID:            id,
		logger:        logger.With().Str("session", id).Logger(),
		source:        source,
		cues:          cues,
		statSuccesses: statusReg.Ints.Get(status.KeySuccesses),
	}
	statusReg.Strings.Get(status.KeySession).Store(id[:8])

	s.state = NewGameState(cfg.Game, cfg.Picker, cfg.Clock.Now())
	s.state.OnTransition(s.onTransition)
	s.scheduler = NewClockScheduler(s.state, source, cfg.Clock, handoff, statusReg, s.logger, cfg.TickInterval)

	snap := s.state.Snapshot(cfg.Clock.Now())
	s.logger.Info().
		Str("target", snap.Target.String()).
		Dur("total", s.state.cfg.TotalTime).
		Msg("session started")
	return s, nil
}

// Start begins ticking
func (s *Session) Start() {
	s.scheduler.Start()
}

// Restart queues a fresh round on the scheduler goroutine
func (s *Session) Restart() {
	s.scheduler.RequestReset()
}

// Stop halts ticking and releases the capture source; safe to call more than once
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		s.scheduler.Stop()
		if err := s.source.Close(); err != nil {
			s.logger.Warn().Err(err).Msg("capture source close failed")
		}
		s.logger.Info().
			Int("score", s.state.Score()).
			Uint64("ticks", s.scheduler.TickCount()).
			Msg("session stopped")
	})
}

// Snapshot exposes the game state read-only
func (s *Session) Snapshot(now time.Time) Snapshot {
	return s.state.Snapshot(now)
}

// onTransition runs on the scheduler goroutine after each phase change
func (s *Session) onTransition(tr Transition) {
	if tr.Reset {
		// NewGameState resets before the observer is attached, so this is a restart
		s.logger.Info().Str("target", tr.Target.String()).Msg("round restarted")
		return
	}

	switch tr.To {
	case core.PhaseFrozen:
		s.statSuccesses.Add(1)
		s.logger.Info().
			Str("target", tr.Target.String()).
			Float64("accuracy", tr.Accuracy).
			Int("score", tr.Score).
			Msg("color accepted")
		if s.cues != nil {
			s.cues.PlaySuccess()
		}
	case core.PhaseFlashing:
		s.logger.Debug().Str("target", tr.Target.String()).Msg("next target")
		if s.cues != nil {
			s.cues.PlayAnnounce()
		}
	case core.PhaseGameOver:
		s.logger.Info().Int("score", tr.Score).Msg("game over")
		if s.cues != nil {
			s.cues.PlayGameOver()
		}
	}
}
