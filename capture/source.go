// Package capture provides the frame sources the game samples from
package capture

import (
	"errors"
	"image"
	"image/draw"
)

var (
	// ErrDeviceUnavailable is returned when a source cannot be opened
	ErrDeviceUnavailable = errors.New("capture device unavailable")

	// ErrClosed is returned by CaptureFrame after Close
	ErrClosed = errors.New("capture source closed")
)

// Source produces frames on demand
// CaptureFrame returns nil, nil when no frame is ready yet
type Source interface {
	CaptureFrame() (image.Image, error)
	Close() error
}

// toRGBA returns src as an owned RGBA image with origin at zero
func toRGBA(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
