package render

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/lixenwraith/colorhunt/core"
)

func solidFrame(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

func near(a, b core.RGB) bool {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.R, b.R) <= 1 && d(a.G, b.G) <= 1 && d(a.B, b.B) <= 1
}

// TestPaintBackdrop verifies the frame is scaled into half-block cells
func TestPaintBackdrop(t *testing.T) {
	buf := NewRenderBuffer(40, 12)
	p := NewPainter(0)
	frame := solidFrame(320, 240, color.RGBA{220, 30, 30, 255})

	in := Intent{Seq: 3, Backdrop: frame, FrameBounds: frame.Bounds()}
	p.Paint(buf, &in)

	want := core.RGB{R: 220, G: 30, B: 30}
	for _, pt := range [][2]int{{0, 0}, {20, 6}, {39, 11}} {
		c := buf.Get(pt[0], pt[1])
		if c.Rune != halfBlock {
			t.Errorf("Cell %v: expected half block, got %q", pt, c.Rune)
		}
		if !near(c.Fg, want) || !near(c.Bg, want) {
			t.Errorf("Cell %v: expected %v, got fg %v bg %v", pt, want, c.Fg, c.Bg)
		}
	}
	if p.LastSeq() != 3 {
		t.Errorf("Expected last seq 3, got %d", p.LastSeq())
	}
}

// TestPaintOpaqueTint verifies full tints replace everything under the text
func TestPaintOpaqueTint(t *testing.T) {
	buf := NewRenderBuffer(30, 10)
	p := NewPainter(0)
	in := FlashingIntent(core.TargetGreen, 0)
	p.Paint(buf, &in)

	if c := buf.Get(0, 0); c.Bg != RgbFlashFill {
		t.Errorf("Expected flash fill background, got %v", c.Bg)
	}

	// "NEXT TASK:" is centered two rows above the middle
	text := "NEXT TASK:"
	x, y := (30-len(text))/2, 10/2-2
	got := make([]rune, 0, len(text))
	for i := range text {
		got = append(got, buf.Get(x+i, y).Rune)
	}
	if string(got) != text {
		t.Errorf("Expected %q at %d,%d, got %q", text, x, y, string(got))
	}
}

// TestPaintRegionBox verifies region corners map from frame pixels to cells
func TestPaintRegionBox(t *testing.T) {
	buf := NewRenderBuffer(32, 24)
	p := NewPainter(0)
	frame := solidFrame(320, 240, color.RGBA{0, 0, 0, 255})
	in := AnalyzingIntent(frame, image.Rect(110, 70, 210, 170), HUD{Target: core.TargetRed}, false)
	p.Paint(buf, &in)

	corners := map[[2]int]rune{
		{11, 7}:  '┌',
		{20, 7}:  '┐',
		{11, 16}: '└',
		{20, 16}: '┘',
	}
	for pt, want := range corners {
		c := buf.Get(pt[0], pt[1])
		if c.Rune != want {
			t.Errorf("Corner %v: expected %q, got %q", pt, want, c.Rune)
		}
		if c.Fg != RgbRegion {
			t.Errorf("Corner %v: expected region color, got %v", pt, c.Fg)
		}
	}
}

// TestLinePosition verifies anchor placement
func TestLinePosition(t *testing.T) {
	tests := []struct {
		line  TextLine
		wantX int
		wantY int
	}{
		{TextLine{Anchor: AnchorTopLeft, Row: 1}, 1, 1},
		{TextLine{Anchor: AnchorTopRight, Row: 0}, 80 - 4 - 1, 0},
		{TextLine{Anchor: AnchorBottomLeft, Row: 0}, 1, 23},
		{TextLine{Anchor: AnchorCenter, Row: -1}, 38, 11},
	}
	for _, tt := range tests {
		x, y := LinePosition(tt.line, "ABCD", 80, 24)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("Anchor %v: expected %d,%d got %d,%d", tt.line.Anchor, tt.wantX, tt.wantY, x, y)
		}
	}
}

// TestPaintEmptyBuffer verifies zero-size buffers are ignored
func TestPaintEmptyBuffer(t *testing.T) {
	buf := NewRenderBuffer(0, 0)
	in := GameOverIntent(10)
	NewPainter(0).Paint(buf, &in)
}

// TestPosterize verifies palette reduction keeps bounds and palette size
func TestPosterize(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 16), uint8(y * 16), 128, 255})
		}
	}
	out := Posterize(img, 8)
	if out.Bounds() != img.Bounds() {
		t.Errorf("Expected bounds %v, got %v", img.Bounds(), out.Bounds())
	}
	if len(out.Palette) == 0 || len(out.Palette) > 8 {
		t.Errorf("Expected 1..8 palette colors, got %d", len(out.Palette))
	}
}
