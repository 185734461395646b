package engine

import (
	"fmt"
	"image"
	"image/draw"
	"sync"
	"time"

	"github.com/lixenwraith/colorhunt/constants"
	"github.com/lixenwraith/colorhunt/core"
	"github.com/lixenwraith/colorhunt/judge"
	"github.com/lixenwraith/colorhunt/render"
)

// GameConfig holds the per-session tunables
type GameConfig struct {
	TotalTime      time.Duration
	RegionHalfSize int
}

// DefaultGameConfig returns the standard 30 second round
func DefaultGameConfig() GameConfig {
	return GameConfig{
		TotalTime:      constants.TotalGameTime,
		RegionHalfSize: constants.RegionHalfSize,
	}
}

// GameState holds the round state and its transition rules
// Tick is called from a single goroutine; the mutex only guards Snapshot readers
type GameState struct {
	mu sync.RWMutex

	cfg    GameConfig
	picker *core.Picker

	phase      core.GamePhase
	target     core.Target
	score      int
	gameStart  time.Time // advanced by PauseCompensation after each Flashing phase
	phaseEntry time.Time

	// Success frame, owned copy held only while Frozen
	snapshot       *image.RGBA
	snapshotRegion image.Rectangle

	lastAccuracy float64
	onTransition func(Transition)
}

// NewGameState creates a state and starts the first round at now
func NewGameState(cfg GameConfig, picker *core.Picker, now time.Time) *GameState {
	if cfg.TotalTime <= 0 {
		cfg.TotalTime = constants.TotalGameTime
	}
	if cfg.RegionHalfSize <= 0 {
		cfg.RegionHalfSize = constants.RegionHalfSize
	}
	if picker == nil {
		picker = core.NewPicker(nil)
	}
	gs := &GameState{cfg: cfg, picker: picker}
	gs.Reset(now)
	return gs
}

// OnTransition registers an observer called after each phase change, outside the lock
// Must be set before ticking starts
func (gs *GameState) OnTransition(fn func(Transition)) {
	gs.onTransition = fn
}

// Reset starts a fresh round from any phase
func (gs *GameState) Reset(now time.Time) {
	gs.mu.Lock()
	from := gs.phase
	gs.score = 0
	gs.lastAccuracy = 0
	gs.snapshot = nil
	gs.phase = core.PhaseAnalyzing
	gs.gameStart = now
	gs.phaseEntry = now
	gs.target = gs.picker.Pick()
	tr := gs.transitionRecord(from, now)
	tr.Reset = true
	gs.mu.Unlock()

	gs.notify(tr)
}

// Tick advances the state machine for one frame
// Returns false with no intent when the frame is empty; state is left untouched
func (gs *GameState) Tick(now time.Time, frame image.Image) (render.Intent, bool) {
	if frame == nil || frame.Bounds().Empty() {
		return render.Intent{}, false
	}

	gs.mu.Lock()
	from := gs.phase
	var in render.Intent
	ok := true
	switch gs.phase {
	case core.PhaseAnalyzing:
		in, ok = gs.tickAnalyzing(now, frame)
	case core.PhaseFrozen:
		in = gs.tickFrozen(now)
	case core.PhaseFlashing:
		in = gs.tickFlashing(now)
	case core.PhaseGameOver:
		in = render.GameOverIntent(gs.score)
	}
	changed := gs.phase != from
	tr := gs.transitionRecord(from, now)
	gs.mu.Unlock()

	if changed {
		gs.notify(tr)
	}
	return in, ok
}

func (gs *GameState) tickAnalyzing(now time.Time, frame image.Image) (render.Intent, bool) {
	remaining := gs.remaining(now)
	if remaining == 0 {
		gs.transition(core.PhaseGameOver, now)
		return render.GameOverIntent(gs.score), true
	}

	sample, ok := judge.Sample(frame, gs.cfg.RegionHalfSize, gs.target)
	if !ok {
		return render.Intent{}, false
	}
	gs.lastAccuracy = sample.Accuracy

	if sample.Success {
		gs.score += constants.ScoreIncrement
		gs.snapshot = cloneFrame(frame)
		gs.snapshotRegion = sample.Region
		gs.transition(core.PhaseFrozen, now)
	}

	hud := render.HUD{
		Target:           gs.target,
		Score:            gs.score,
		RemainingSeconds: ceilSeconds(remaining),
		Accuracy:         sample.Accuracy,
		Pass:             sample.Success,
	}
	return render.AnalyzingIntent(frame, sample.Region, hud, sample.Success), true
}

func (gs *GameState) tickFrozen(now time.Time) render.Intent {
	elapsed := now.Sub(gs.phaseEntry)
	countdown := constants.FreezeCountdownSeconds - int(elapsed/time.Second)
	in := render.FrozenIntent(gs.snapshot, gs.snapshotRegion, gs.target, gs.score, countdown)

	if elapsed >= constants.FreezeDuration {
		gs.target = gs.picker.Pick()
		gs.snapshot = nil
		gs.transition(core.PhaseFlashing, now)
	}
	return in
}

func (gs *GameState) tickFlashing(now time.Time) render.Intent {
	in := render.FlashingIntent(gs.target, gs.score)
	if now.Sub(gs.phaseEntry) > constants.FlashDuration {
		gs.transition(core.PhaseAnalyzing, now)
		gs.gameStart = gs.gameStart.Add(constants.PauseCompensation)
	}
	return in
}

// transition moves to the next phase; an edge missing from the table is a programming error
func (gs *GameState) transition(to core.GamePhase, now time.Time) {
	if !CanTransition(gs.phase, to) {
		panic(fmt.Sprintf("engine: invalid phase transition %v -> %v", gs.phase, to))
	}
	gs.phase = to
	gs.phaseEntry = now
}

func (gs *GameState) transitionRecord(from core.GamePhase, now time.Time) Transition {
	return Transition{
		From:     from,
		To:       gs.phase,
		At:       now,
		Target:   gs.target,
		Score:    gs.score,
		Accuracy: gs.lastAccuracy,
	}
}

func (gs *GameState) notify(tr Transition) {
	if gs.onTransition != nil {
		gs.onTransition(tr)
	}
}

// remaining is the clamped countdown; caller holds the lock
func (gs *GameState) remaining(now time.Time) time.Duration {
	r := gs.cfg.TotalTime - now.Sub(gs.gameStart)
	if r < 0 {
		return 0
	}
	if r > gs.cfg.TotalTime {
		return gs.cfg.TotalTime
	}
	return r
}

// ceilSeconds rounds a countdown up so "TIME: 1" shows until the last instant
func ceilSeconds(d time.Duration) int {
	return int((d + time.Second - 1) / time.Second)
}

// cloneFrame copies any image into an owned RGBA buffer
func cloneFrame(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	return dst
}

// ===== READ-ONLY ACCESSORS (mutex protected) =====

// Snapshot is a consistent read-only view of the state
type Snapshot struct {
	Phase      core.GamePhase
	Target     core.Target
	Score      int
	GameStart  time.Time
	PhaseEntry time.Time
	Remaining  time.Duration
	Frozen     bool // a success frame is held
}

// Snapshot returns a consistent view evaluated at now
func (gs *GameState) Snapshot(now time.Time) Snapshot {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return Snapshot{
		Phase:      gs.phase,
		Target:     gs.target,
		Score:      gs.score,
		GameStart:  gs.gameStart,
		PhaseEntry: gs.phaseEntry,
		Remaining:  gs.remaining(now),
		Frozen:     gs.snapshot != nil,
	}
}

// Phase returns the current phase
func (gs *GameState) Phase() core.GamePhase {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.phase
}

// Score returns the current score
func (gs *GameState) Score() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.score
}
