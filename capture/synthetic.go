package capture

import (
	"image"
	"math/rand"
	"sync"
	"time"

	"github.com/lixenwraith/colorhunt/constants"
	"github.com/lixenwraith/colorhunt/core"
)

// Backdrop of the virtual room behind the card
var syntheticBackground = core.RGB{R: 96, G: 88, B: 80}

// Synthetic is a virtual camera: a noisy room with a colored card the player moves around
// Controls are called from the input goroutine while the scheduler captures
type Synthetic struct {
	mu     sync.Mutex
	rng    *rand.Rand
	width  int
	height int

	card      image.Rectangle
	cardColor core.RGB
	cardShown bool
	closed    bool
}

// NewSynthetic creates a w x h virtual camera with the card hidden at the center
// A zero seed seeds from the clock
func NewSynthetic(w, h int, seed int64) *Synthetic {
	if w <= 0 || h <= 0 {
		w, h = constants.SyntheticFrameWidth, constants.SyntheticFrameHeight
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Synthetic{
		rng:       rand.New(rand.NewSource(seed)),
		width:     w,
		height:    h,
		cardColor: syntheticBackground,
	}
	half := constants.SyntheticCardSize / 2
	c := image.Pt(w/2, h/2)
	s.card = image.Rect(c.X-half, c.Y-half, c.X+half, c.Y+half)
	return s
}

// SetCardColor shows the card in the given color
func (s *Synthetic) SetCardColor(c core.RGB) {
	s.mu.Lock()
	s.cardColor = c
	s.cardShown = true
	s.mu.Unlock()
}

// HideCard takes the card out of view
func (s *Synthetic) HideCard() {
	s.mu.Lock()
	s.cardShown = false
	s.mu.Unlock()
}

// Move shifts the card, keeping at least one pixel row and column in frame
func (s *Synthetic) Move(dx, dy int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	moved := s.card.Add(image.Pt(dx, dy))
	frame := image.Rect(0, 0, s.width, s.height)
	if !moved.Overlaps(frame) {
		return
	}
	s.card = moved
}

// Resize grows or shrinks the card around its center
func (s *Synthetic) Resize(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.card.Inset(-delta)
	if r.Dx() < constants.SyntheticCardStep || r.Dy() < constants.SyntheticCardStep {
		return
	}
	s.card = r
}

// Card returns the card rectangle and whether it is shown
func (s *Synthetic) Card() (image.Rectangle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.card, s.cardShown
}

// CaptureFrame renders a new frame
func (s *Synthetic) CaptureFrame() (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	card := s.card.Intersect(img.Rect)
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			base, amp := syntheticBackground, constants.SyntheticNoise
			if s.cardShown && image.Pt(x, y).In(card) {
				base, amp = s.cardColor, constants.SyntheticNoise/2
			}
			i := img.PixOffset(x, y)
			img.Pix[i] = s.jitter(base.R, amp)
			img.Pix[i+1] = s.jitter(base.G, amp)
			img.Pix[i+2] = s.jitter(base.B, amp)
			img.Pix[i+3] = 0xff
		}
	}
	return img, nil
}

// jitter adds uniform noise in [-amp, amp]; caller holds the lock
func (s *Synthetic) jitter(v uint8, amp int) uint8 {
	if amp <= 0 {
		return v
	}
	n := int(v) + s.rng.Intn(2*amp+1) - amp
	switch {
	case n < 0:
		return 0
	case n > 255:
		return 255
	}
	return uint8(n)
}

// Close stops the camera
func (s *Synthetic) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}
