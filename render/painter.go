package render

import (
	"image"
	"strings"

	"golang.org/x/image/draw"

	"github.com/lixenwraith/colorhunt/core"
)

// Half-block rune: foreground paints the upper pixel, background the lower
const halfBlock = '▀'

var (
	lightBorder = [6]rune{'┌', '┐', '└', '┘', '─', '│'}
	heavyBorder = [6]rune{'┏', '┓', '┗', '┛', '━', '┃'}
)

// Painter turns an Intent into cells
// Not safe for concurrent use; owned by the render loop
type Painter struct {
	scaler    draw.Scaler
	paletteN  int
	scratch   *image.RGBA
	lastPaint uint64
}

// NewPainter creates a painter; paletteSize > 0 posterizes backdrops to that many colors
func NewPainter(paletteSize int) *Painter {
	return &Painter{
		scaler:   draw.ApproxBiLinear,
		paletteN: paletteSize,
	}
}

// LastSeq returns the sequence number of the last painted intent
func (p *Painter) LastSeq() uint64 {
	return p.lastPaint
}

// Paint composes in into buf, replacing previous content
func (p *Painter) Paint(buf *RenderBuffer, in *Intent) {
	buf.Clear()
	w, h := buf.Bounds()
	if w == 0 || h == 0 {
		return
	}

	if in.HasBackdrop() {
		p.paintBackdrop(buf, in.Backdrop)
	}
	if in.Tint != nil {
		buf.Wash(in.Tint.Color, in.Tint.Alpha)
	}
	if in.Region != nil && !in.FrameBounds.Empty() {
		paintBox(buf, cellRect(in.Region.Rect, in.FrameBounds, w, h), in.Region)
	}
	for _, line := range in.Lines {
		paintLine(buf, line)
	}
	p.lastPaint = in.Seq
}

// paintBackdrop scales the frame to the cell grid at two pixels per cell vertically
func (p *Painter) paintBackdrop(buf *RenderBuffer, src image.Image) {
	w, h := buf.Bounds()
	if p.paletteN > 0 {
		src = Posterize(src, p.paletteN)
	}

	target := image.Rect(0, 0, w, h*2)
	if p.scratch == nil || p.scratch.Bounds() != target {
		p.scratch = image.NewRGBA(target)
	}
	p.scaler.Scale(p.scratch, target, src, src.Bounds(), draw.Src, nil)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			top := p.scratch.RGBAAt(x, y*2)
			bottom := p.scratch.RGBAAt(x, y*2+1)
			buf.SetWithBg(x, y, halfBlock,
				core.RGB{R: top.R, G: top.G, B: top.B},
				core.RGB{R: bottom.R, G: bottom.G, B: bottom.B})
		}
	}
}

// cellRect maps a rectangle in frame pixels to cell coordinates
func cellRect(r, frame image.Rectangle, w, h int) image.Rectangle {
	fx := func(px int) int { return (px - frame.Min.X) * w / frame.Dx() }
	fy := func(py int) int { return (py - frame.Min.Y) * h / frame.Dy() }
	return image.Rect(fx(r.Min.X), fy(r.Min.Y), fx(r.Max.X), fy(r.Max.Y))
}

// paintBox outlines r in cells; Max is exclusive, so the border sits on Max-1
func paintBox(buf *RenderBuffer, r image.Rectangle, box *Box) {
	if r.Dx() < 2 || r.Dy() < 2 {
		return
	}
	runes := lightBorder
	attrs := AttrNone
	if box.Heavy {
		runes = heavyBorder
		attrs = AttrBold
	}
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1

	for x := x0 + 1; x < x1; x++ {
		buf.SetFgOnly(x, y0, runes[4], box.Color, attrs)
		buf.SetFgOnly(x, y1, runes[4], box.Color, attrs)
	}
	for y := y0 + 1; y < y1; y++ {
		buf.SetFgOnly(x0, y, runes[5], box.Color, attrs)
		buf.SetFgOnly(x1, y, runes[5], box.Color, attrs)
	}
	buf.SetFgOnly(x0, y0, runes[0], box.Color, attrs)
	buf.SetFgOnly(x1, y0, runes[1], box.Color, attrs)
	buf.SetFgOnly(x0, y1, runes[2], box.Color, attrs)
	buf.SetFgOnly(x1, y1, runes[3], box.Color, attrs)
}

// LinePosition returns the starting cell of a text line
func LinePosition(line TextLine, text string, w, h int) (int, int) {
	n := len([]rune(text))
	switch line.Anchor {
	case AnchorTopRight:
		return w - n - 1, line.Row
	case AnchorBottomLeft:
		return 1, h - 1 - line.Row
	case AnchorCenter:
		return (w - n) / 2, h/2 + line.Row
	}
	return 1, line.Row
}

func paintLine(buf *RenderBuffer, line TextLine) {
	w, h := buf.Bounds()
	text := line.Text
	attrs := AttrNone
	if line.Emphasis == EmphasisTitle {
		// Spread title letters for a larger look
		text = strings.Join(strings.Split(text, ""), " ")
		attrs = AttrBold
	}
	fg := EmphasisColor(line)
	x, y := LinePosition(line, text, w, h)
	if x < 0 {
		x = 0
	}
	for _, r := range text {
		buf.SetFgOnly(x, y, r, fg, attrs)
		x++
	}
}

// PaintStatusLine writes a right-aligned diagnostics line on the bottom row
func PaintStatusLine(buf *RenderBuffer, text string) {
	w, h := buf.Bounds()
	if w == 0 || h == 0 || text == "" {
		return
	}
	runes := []rune(text)
	if len(runes) > w {
		runes = runes[len(runes)-w:]
	}
	x := w - len(runes)
	for _, r := range runes {
		buf.SetWithBg(x, h-1, r, RgbStatusDebug, RgbBackground)
		x++
	}
}
