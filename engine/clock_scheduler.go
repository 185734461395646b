package engine

import (
	"image"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/colorhunt/core"
	"github.com/lixenwraith/colorhunt/status"
)

// FrameSource supplies camera frames; a nil frame with nil error means no frame is ready
type FrameSource interface {
	CaptureFrame() (image.Image, error)
	Close() error
}

// ClockScheduler drives GameState on a fixed tick and publishes render intents
// GameState is only mutated on the scheduler goroutine
type ClockScheduler struct {
	state   *GameState
	source  FrameSource
	clock   TimeProvider
	handoff *IntentHandoff
	logger  zerolog.Logger

	// Tick configuration
	tickInterval     time.Duration
	nextTickDeadline time.Time // Next tick deadline for drift correction

	tickCount atomic.Uint64
	mu        sync.RWMutex

	// Control channels
	stopChan  chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
	running   atomic.Bool
	resetChan chan struct{}

	// Consecutive capture failures, logged on first occurrence only
	captureFailing bool

	// Cached metric pointers
	statTicks    *atomic.Int64
	statSkipped  *atomic.Int64
	statCapture  *atomic.Int64
	statScore    *atomic.Int64
	statAccuracy *status.AtomicFloat
	statPhase    *status.AtomicString
	statTarget   *status.AtomicString
}

// NewClockScheduler creates a scheduler for one session
func NewClockScheduler(
	state *GameState,
	source FrameSource,
	clock TimeProvider,
	handoff *IntentHandoff,
	statusReg *status.Registry,
	logger zerolog.Logger,
	tickInterval time.Duration,
) *ClockScheduler {
	if statusReg == nil {
		statusReg = status.NewRegistry()
	}
	return &ClockScheduler{
		state:        state,
		source:       source,
		clock:        clock,
		handoff:      handoff,
		logger:       logger,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
		resetChan:    make(chan struct{}, 1),
		statTicks:    statusReg.Ints.Get(status.KeyTicks),
		statSkipped:  statusReg.Ints.Get(status.KeySkipped),
		statCapture:  statusReg.Ints.Get(status.KeyCaptureError),
		statScore:    statusReg.Ints.Get(status.KeyScore),
		statAccuracy: statusReg.Floats.Get(status.KeyAccuracy),
		statPhase:    statusReg.Strings.Get(status.KeyPhase),
		statTarget:   statusReg.Strings.Get(status.KeyTarget),
	}
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		// Use core.Go for safe execution with centralized crash handling
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for an in-flight tick to finish
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// RequestReset queues a new round; executed on the scheduler goroutine
func (cs *ClockScheduler) RequestReset() {
	select {
	case cs.resetChan <- struct{}{}:
	default:
	}
}

// TickCount returns the number of ticks processed
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// schedulerLoop runs the main scheduling loop
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.mu.Lock()
	cs.nextTickDeadline = time.Now().Add(cs.tickInterval)
	cs.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-cs.resetChan:
			cs.executeReset()
			continue
		default:
		}

		var sleepDuration time.Duration
		now := time.Now()

		cs.mu.RLock()
		deadline := cs.nextTickDeadline
		cs.mu.RUnlock()

		if !now.Before(deadline) {
			cs.processTick()

			cs.mu.Lock()
			cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)

			maxBehind := cs.tickInterval * 2
			if now.Sub(cs.nextTickDeadline) > maxBehind {
				cs.nextTickDeadline = now.Add(cs.tickInterval)
			}
			deadline = cs.nextTickDeadline
			cs.mu.Unlock()

			sleepDuration = time.Until(deadline)
		} else {
			sleepDuration = deadline.Sub(now)
		}

		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
			case <-cs.resetChan:
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				cs.executeReset()
			case <-cs.stopChan:
				return
			}
		}
	}
}

// executeReset starts a new round and realigns tick timing
func (cs *ClockScheduler) executeReset() {
	cs.mu.Lock()
	cs.tickCount.Store(0)
	cs.nextTickDeadline = time.Now().Add(cs.tickInterval)
	cs.mu.Unlock()

	cs.state.Reset(cs.clock.Now())
	cs.logger.Debug().Msg("round reset")
}

// processTick executes one capture, state update and publish cycle
func (cs *ClockScheduler) processTick() {
	ticks := cs.tickCount.Add(1)
	cs.statTicks.Store(int64(ticks))

	frame, err := cs.source.CaptureFrame()
	if err != nil {
		cs.statCapture.Add(1)
		if !cs.captureFailing {
			cs.logger.Warn().Err(err).Msg("frame capture failed")
			cs.captureFailing = true
		}
		frame = nil
	} else if cs.captureFailing {
		cs.logger.Info().Msg("frame capture recovered")
		cs.captureFailing = false
	}

	in, ok := cs.state.Tick(cs.clock.Now(), frame)
	if !ok {
		cs.statSkipped.Add(1)
		return
	}
	cs.handoff.Publish(in)

	cs.statScore.Store(int64(in.Score))
	cs.statPhase.Store(cs.state.Phase().String())
	switch in.Phase {
	case core.PhaseAnalyzing:
		cs.statAccuracy.Set(in.Accuracy)
		cs.statTarget.Store(in.Target.String())
	case core.PhaseFrozen, core.PhaseFlashing:
		cs.statTarget.Store(in.Target.String())
	}
}
