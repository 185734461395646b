package capture

import (
	"image"
)

// Mirror flips every frame of the wrapped source horizontally, like a selfie view
type Mirror struct {
	Source
}

// NewMirror wraps src
func NewMirror(src Source) *Mirror {
	return &Mirror{Source: src}
}

// CaptureFrame returns a mirrored copy of the next frame
func (m *Mirror) CaptureFrame() (image.Image, error) {
	frame, err := m.Source.CaptureFrame()
	if err != nil || frame == nil {
		return frame, err
	}
	return MirrorImage(frame), nil
}

// MirrorImage returns a horizontally flipped RGBA copy of src
func MirrorImage(src image.Image) *image.RGBA {
	rgba := toRGBA(src)
	w, h := rgba.Rect.Dx(), rgba.Rect.Dy()
	for y := 0; y < h; y++ {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+w*4]
		for l, r := 0, w-1; l < r; l, r = l+1, r-1 {
			li, ri := l*4, r*4
			row[li], row[ri] = row[ri], row[li]
			row[li+1], row[ri+1] = row[ri+1], row[li+1]
			row[li+2], row[ri+2] = row[ri+2], row[li+2]
			row[li+3], row[ri+3] = row[ri+3], row[li+3]
		}
	}
	return rgba
}
