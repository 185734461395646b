package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/colorhunt/render"
)

// IntentHandoff passes render intents from the scheduler to the render loop
// Latest wins; a stored intent is only ever replaced by one with a higher Seq
type IntentHandoff struct {
	latest atomic.Pointer[render.Intent]
	next   atomic.Uint64
	ready  chan struct{}
}

// NewIntentHandoff creates an empty handoff
func NewIntentHandoff() *IntentHandoff {
	return &IntentHandoff{ready: make(chan struct{}, 1)}
}

// Publish stamps the intent with the next sequence number and stores it
// Returns false if a newer intent was already stored
func (h *IntentHandoff) Publish(in render.Intent) bool {
	in.Seq = h.next.Add(1)
	return h.store(&in)
}

func (h *IntentHandoff) store(in *render.Intent) bool {
	for {
		cur := h.latest.Load()
		if cur != nil && cur.Seq >= in.Seq {
			return false
		}
		if h.latest.CompareAndSwap(cur, in) {
			break
		}
	}

	select {
	case h.ready <- struct{}{}:
	default:
	}
	return true
}

// Take returns the latest intent if it is newer than lastSeen
func (h *IntentHandoff) Take(lastSeen uint64) (*render.Intent, bool) {
	in := h.latest.Load()
	if in == nil || in.Seq <= lastSeen {
		return nil, false
	}
	return in, true
}

// Ready signals that a new intent may be available
func (h *IntentHandoff) Ready() <-chan struct{} {
	return h.ready
}

// Seq returns the last assigned sequence number
func (h *IntentHandoff) Seq() uint64 {
	return h.next.Load()
}
