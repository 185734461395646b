package status

import (
	"sync"
	"testing"
)

// TestRegistryLine verifies metrics render in a stable order
func TestRegistryLine(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyTicks).Store(12)
	r.Ints.Get(KeySuccesses).Store(2)
	r.Floats.Get(KeyAccuracy).Set(71.3)
	r.Strings.Get(KeyPhase).Store("Frozen")

	want := "phase=Frozen ticks=12 successes=2 accuracy=71.3"
	if got := r.Line(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if r.TotalCount() != 4 {
		t.Errorf("Expected 4 metrics, got %d", r.TotalCount())
	}
}

// TestMetricMapCachedPointer verifies repeated Get returns the same pointer under contention
func TestMetricMapCachedPointer(t *testing.T) {
	r := NewRegistry()
	first := r.Ints.Get(KeyTicks)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Ints.Get(KeyTicks).Add(1)
			}
		}()
	}
	wg.Wait()

	if first.Load() != 800 {
		t.Errorf("Expected 800, got %d", first.Load())
	}
}

// TestAtomicStringTruncates verifies the length cap
func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("Expected empty zero value")
	}
	s.Store("0123456789012345678901234")
	if len(s.Load()) != MaxStringLen {
		t.Errorf("Expected %d chars, got %d", MaxStringLen, len(s.Load()))
	}
}
