package render

import (
	"golang.org/x/image/colornames"

	"github.com/lixenwraith/colorhunt/core"
)

// Overlay palette
var (
	RgbHUDText     = core.FromColor(colornames.White)
	RgbScore       = core.FromColor(colornames.Lime)
	RgbTimer       = core.FromColor(colornames.Red)
	RgbPass        = core.FromColor(colornames.Lime)
	RgbFail        = core.FromColor(colornames.Red)
	RgbRegion      = core.FromColor(colornames.Yellow)
	RgbRegionHit   = core.FromColor(colornames.Lime)
	RgbTitle       = core.FromColor(colornames.Yellow)
	RgbFlashFill   = core.RGB{R: 30, G: 30, B: 30}
	RgbGameOver    = core.RGBBlack
	RgbFrozenDim   = core.RGBBlack
	RgbBackground  = core.RGB{R: 26, G: 27, B: 38} // Tokyo Night background
	RgbStatusDebug = core.FromColor(colornames.Gray)
)

// TargetDisplayColor returns a saturated display color for a target name
func TargetDisplayColor(t core.Target) core.RGB {
	switch t {
	case core.TargetRed:
		return core.FromColor(colornames.Red)
	case core.TargetGreen:
		return core.FromColor(colornames.Lime)
	case core.TargetBlue:
		return core.FromColor(colornames.Dodgerblue)
	}
	return RgbHUDText
}

// EmphasisColor resolves the foreground for a line, keeping explicit colors for normal text
func EmphasisColor(line TextLine) core.RGB {
	switch line.Emphasis {
	case EmphasisPass:
		return RgbPass
	case EmphasisFail:
		return RgbFail
	}
	return line.Color
}
