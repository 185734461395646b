package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"
)

// Posterize reduces src to a median-cut palette of at most n colors with error diffusion
// Keeps 256-color terminals from banding on camera noise
func Posterize(src image.Image, n int) *image.Paletted {
	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(make(color.Palette, 0, n), src)
	dst := image.NewPaletted(src.Bounds(), p)
	draw.FloydSteinberg.Draw(dst, dst.Bounds(), src, src.Bounds().Min)
	return dst
}
