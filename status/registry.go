package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys written by the game loop
const (
	KeyTicks        = "engine.ticks"
	KeySkipped      = "engine.skipped_frames"
	KeyCaptureError = "capture.errors"
	KeySuccesses    = "game.successes"
	KeyScore        = "game.score"
	KeyAccuracy     = "game.accuracy"
	KeyPhase        = "game.phase"
	KeyTarget       = "game.target"
	KeySession      = "game.session"
)

// Registry is the central metrics facade
// The scheduler caches pointers during init; tick code writes directly to atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Line renders every metric as "key=value" pairs in sorted key order per type
func (r *Registry) Line() string {
	var sb strings.Builder
	sep := func() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
	}
	r.Strings.Range(func(k string, v *AtomicString) {
		sep()
		fmt.Fprintf(&sb, "%s=%s", shortKey(k), v.Load())
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		sep()
		fmt.Fprintf(&sb, "%s=%d", shortKey(k), v.Load())
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		sep()
		fmt.Fprintf(&sb, "%s=%.1f", shortKey(k), v.Get())
	})
	return sb.String()
}

// shortKey drops the namespace prefix for compact display
func shortKey(k string) string {
	if i := strings.LastIndexByte(k, '.'); i >= 0 {
		return k[i+1:]
	}
	return k
}
