package audio

import (
	"sync"

	"github.com/gopxl/beep"
)

// soundCache stores pre-rendered effect buffers so playback never synthesizes on the tick goroutine
type soundCache struct {
	mu     sync.RWMutex
	cfg    *AudioConfig
	format beep.Format
	store  [soundTypeCount]*beep.Buffer
	ready  [soundTypeCount]bool
}

func newSoundCache(cfg *AudioConfig) *soundCache {
	return &soundCache{
		cfg: cfg,
		format: beep.Format{
			SampleRate:  beep.SampleRate(cfg.SampleRate),
			NumChannels: 2,
			Precision:   2,
		},
	}
}

// get returns cached buffer or renders on demand
func (c *soundCache) get(st SoundType) *beep.Buffer {
	if st < 0 || st >= soundTypeCount {
		return nil
	}

	c.mu.RLock()
	if c.ready[st] {
		buf := c.store[st]
		c.mu.RUnlock()
		return buf
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.ready[st] {
		return c.store[st]
	}

	buf := beep.NewBuffer(c.format)
	buf.Append(GetSoundEffect(st, c.cfg))
	c.store[st] = buf
	c.ready[st] = true
	return buf
}

// streamer returns a fresh playback cursor over the cached buffer
func (c *soundCache) streamer(st SoundType) beep.Streamer {
	buf := c.get(st)
	if buf == nil {
		return nil
	}
	return buf.Streamer(0, buf.Len())
}

// preload renders every cue at init
func (c *soundCache) preload() {
	for st := SoundType(0); st < soundTypeCount; st++ {
		c.get(st)
	}
}
