package engine

import (
	"errors"
	"image"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/colorhunt/core"
	"github.com/lixenwraith/colorhunt/status"
)

// stubSource returns a fixed frame or error
type stubSource struct {
	mu       sync.Mutex
	frame    image.Image
	err      error
	captures atomic.Int64
	closed   atomic.Int32
}

func (s *stubSource) CaptureFrame() (image.Image, error) {
	s.captures.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame, s.err
}

func (s *stubSource) Close() error {
	s.closed.Add(1)
	return nil
}

func (s *stubSource) set(frame image.Image, err error) {
	s.mu.Lock()
	s.frame, s.err = frame, err
	s.mu.Unlock()
}

func newTestScheduler(t *testing.T, src FrameSource, interval time.Duration) (*ClockScheduler, *MockTimeProvider, *IntentHandoff, *status.Registry) {
	t.Helper()
	clock := NewMockTimeProvider(testEpoch)
	gs := NewGameState(DefaultGameConfig(), core.NewSeededPicker(7), clock.Now())
	handoff := NewIntentHandoff()
	reg := status.NewRegistry()
	cs := NewClockScheduler(gs, src, clock, handoff, reg, zerolog.Nop(), interval)
	return cs, clock, handoff, reg
}

// waitFor polls cond until it holds or the timeout expires
func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("Condition not met before timeout")
}

func TestProcessTickPublishes(t *testing.T) {
	src := &stubSource{frame: greyFrame}
	cs, clock, handoff, reg := newTestScheduler(t, src, time.Millisecond)

	clock.SetMillis(1500)
	cs.processTick()

	in, ok := handoff.Take(0)
	if !ok {
		t.Fatal("Expected published intent")
	}
	if in.Seq != 1 || in.Phase != core.PhaseAnalyzing {
		t.Errorf("Expected first analyzing intent, got seq %d phase %v", in.Seq, in.Phase)
	}
	if in.RemainingSeconds != 29 {
		t.Errorf("Expected 29 seconds remaining, got %d", in.RemainingSeconds)
	}
	if got := reg.Ints.Get(status.KeyTicks).Load(); got != 1 {
		t.Errorf("Expected 1 tick, got %d", got)
	}
	if got := reg.Strings.Get(status.KeyPhase).Load(); got != core.PhaseAnalyzing.String() {
		t.Errorf("Expected phase metric %q, got %q", core.PhaseAnalyzing.String(), got)
	}
}

func TestProcessTickCaptureFailure(t *testing.T) {
	src := &stubSource{err: errors.New("camera unplugged")}
	cs, _, handoff, reg := newTestScheduler(t, src, time.Millisecond)

	cs.processTick()
	cs.processTick()

	if _, ok := handoff.Take(0); ok {
		t.Error("Expected no intent on capture failure")
	}
	if got := reg.Ints.Get(status.KeyCaptureError).Load(); got != 2 {
		t.Errorf("Expected 2 capture errors, got %d", got)
	}
	if got := reg.Ints.Get(status.KeySkipped).Load(); got != 2 {
		t.Errorf("Expected 2 skipped frames, got %d", got)
	}

	src.set(greyFrame, nil)
	cs.processTick()
	if _, ok := handoff.Take(0); !ok {
		t.Error("Expected intent after capture recovered")
	}
}

func TestSchedulerStartStop(t *testing.T) {
	src := &stubSource{frame: greyFrame}
	cs, _, handoff, _ := newTestScheduler(t, src, 2*time.Millisecond)

	cs.Start()
	cs.Start() // second start is a no-op
	waitFor(t, 2*time.Second, func() bool { return cs.TickCount() >= 3 })
	cs.Stop()

	after := src.captures.Load()
	time.Sleep(20 * time.Millisecond)
	if src.captures.Load() != after {
		t.Error("Ticks continued after Stop")
	}
	if in, ok := handoff.Take(0); !ok || in.Seq < 3 {
		t.Errorf("Expected at least 3 published intents, got %+v", in)
	}

	cs.Stop() // idempotent
}

func TestSchedulerStopBeforeStart(t *testing.T) {
	cs, _, _, _ := newTestScheduler(t, &stubSource{frame: greyFrame}, time.Millisecond)
	cs.Stop()
	if cs.TickCount() != 0 {
		t.Error("Expected no ticks")
	}
}

func TestSchedulerResetFromGameOver(t *testing.T) {
	src := &stubSource{frame: greyFrame}
	cs, clock, _, _ := newTestScheduler(t, src, 2*time.Millisecond)

	clock.SetMillis(31000)
	cs.processTick()
	if cs.state.Phase() != core.PhaseGameOver {
		t.Fatalf("Expected GameOver, got %v", cs.state.Phase())
	}

	cs.Start()
	defer cs.Stop()
	cs.RequestReset()
	cs.RequestReset() // coalesced

	waitFor(t, 2*time.Second, func() bool { return cs.state.Phase() == core.PhaseAnalyzing })
	snap := cs.state.Snapshot(clock.Now())
	if snap.Score != 0 || snap.Remaining != DefaultGameConfig().TotalTime {
		t.Errorf("Expected fresh round, got %+v", snap)
	}
}
