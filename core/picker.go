package core

import (
	"math/rand"
	"sync"
	"time"
)

// Picker draws target colors uniformly with replacement
// One generator lives for the picker's lifetime; repeats are allowed
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPicker creates a picker over the provided generator
// A nil generator is replaced by a time-seeded one
func NewPicker(rng *rand.Rand) *Picker {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Picker{rng: rng}
}

// NewSeededPicker creates a picker with a deterministic sequence
func NewSeededPicker(seed int64) *Picker {
	return NewPicker(rand.New(rand.NewSource(seed)))
}

// Pick returns the next target
func (p *Picker) Pick() Target {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Targets[p.rng.Intn(len(Targets))]
}
