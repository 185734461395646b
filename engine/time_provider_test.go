package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	mock.SetMillis(3600)
	if got := mock.Now().Sub(startTime); got != 3600*time.Millisecond {
		t.Errorf("Expected 3.6s after SetMillis, got %v", got)
	}

	mock.Advance(300 * time.Millisecond)
	if got := mock.Now().Sub(startTime); got != 3900*time.Millisecond {
		t.Errorf("Expected 3.9s after Advance, got %v", got)
	}

	// SetMillis is relative to the start, not the current time
	mock.SetMillis(500)
	if got := mock.Now().Sub(startTime); got != 500*time.Millisecond {
		t.Errorf("Expected 500ms after second SetMillis, got %v", got)
	}
}
