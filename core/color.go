package core

import (
	"fmt"
	"image/color"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// FromColor converts any image color to RGB, dropping alpha
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// RGBA implements color.Color so RGB values can be drawn into images
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// String formats as #rrggbb
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Scale multiplies each channel by factor (for dimming effects)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

// MeanRGB is a channel mean with fractional precision, as produced by region sampling
type MeanRGB struct {
	R, G, B float64
}

// Mean widens an 8-bit color to a MeanRGB
func (c RGB) Mean() MeanRGB {
	return MeanRGB{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

// RGB rounds the mean back to 8-bit channels
func (m MeanRGB) RGB() RGB {
	return RGB{R: clampChannel(m.R), G: clampChannel(m.G), B: clampChannel(m.B)}
}

func (m MeanRGB) String() string {
	return fmt.Sprintf("(%.1f, %.1f, %.1f)", m.R, m.G, m.B)
}

func clampChannel(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v + 0.5)
}
