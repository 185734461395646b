package judge

import (
	"image"

	"github.com/lixenwraith/colorhunt/core"
)

// Region returns the square sampling region of the given half-size centered in bounds,
// clipped to bounds. An empty rectangle means nothing can be sampled.
func Region(bounds image.Rectangle, halfSize int) image.Rectangle {
	cx := bounds.Min.X + bounds.Dx()/2
	cy := bounds.Min.Y + bounds.Dy()/2
	r := image.Rect(cx-halfSize, cy-halfSize, cx+halfSize, cy+halfSize)
	return r.Intersect(bounds)
}

// MeanColor computes the mean RGB over rect, clipped to the image bounds
// Returns false when the clipped region is empty
func MeanColor(img image.Image, rect image.Rectangle) (core.MeanRGB, bool) {
	if img == nil {
		return core.MeanRGB{}, false
	}
	rect = rect.Intersect(img.Bounds())
	if rect.Empty() {
		return core.MeanRGB{}, false
	}

	var rSum, gSum, bSum uint64

	// Fast path over packed RGBA pixels
	if rgba, ok := img.(*image.RGBA); ok {
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			off := rgba.PixOffset(rect.Min.X, y)
			for x := rect.Min.X; x < rect.Max.X; x++ {
				rSum += uint64(rgba.Pix[off])
				gSum += uint64(rgba.Pix[off+1])
				bSum += uint64(rgba.Pix[off+2])
				off += 4
			}
		}
	} else {
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			for x := rect.Min.X; x < rect.Max.X; x++ {
				r, g, b, _ := img.At(x, y).RGBA()
				rSum += uint64(r >> 8)
				gSum += uint64(g >> 8)
				bSum += uint64(b >> 8)
			}
		}
	}

	n := float64(rect.Dx() * rect.Dy())
	return core.MeanRGB{
		R: float64(rSum) / n,
		G: float64(gSum) / n,
		B: float64(bSum) / n,
	}, true
}

// ColorSample is the mean color of a frame's sampling region with its verdict
type ColorSample struct {
	Region image.Rectangle
	Verdict
}

// Sample measures the centered region of img against target
func Sample(img image.Image, halfSize int, target core.Target) (ColorSample, bool) {
	if img == nil {
		return ColorSample{}, false
	}
	region := Region(img.Bounds(), halfSize)
	mean, ok := MeanColor(img, region)
	if !ok {
		return ColorSample{}, false
	}
	return ColorSample{Region: region, Verdict: Judge(mean, target)}, true
}
