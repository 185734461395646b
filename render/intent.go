package render

import (
	"image"

	"github.com/lixenwraith/colorhunt/core"
)

// Anchor positions a text line relative to the screen
type Anchor uint8

const (
	AnchorTopLeft Anchor = iota
	AnchorTopRight
	AnchorBottomLeft
	AnchorCenter
)

// Emphasis selects how a text line is styled
type Emphasis uint8

const (
	EmphasisNormal Emphasis = iota
	EmphasisPass
	EmphasisFail
	EmphasisTitle
)

// TextLine is one overlay string
// Row is a line offset from the anchor: downward for top and center anchors, upward for bottom
type TextLine struct {
	Text     string
	Anchor   Anchor
	Row      int
	Color    core.RGB
	Emphasis Emphasis
}

// Box outlines a rectangle given in frame pixel coordinates
type Box struct {
	Rect  image.Rectangle
	Color core.RGB
	Heavy bool
}

// Tint is a full-screen color wash; Alpha 1 replaces the backdrop entirely
type Tint struct {
	Color core.RGB
	Alpha float64
}

// Intent is a declarative description of one displayed frame
// The renderer owns all pixel decisions; nothing here draws
type Intent struct {
	Seq   uint64
	Phase core.GamePhase
	Idle  bool // no session running

	// Backdrop is the camera image to show, nil when a tint covers the screen
	// Treat as read-only: it may be shared with later intents
	Backdrop image.Image

	// FrameBounds is the coordinate space of Region, kept when Backdrop is nil
	FrameBounds image.Rectangle

	Region *Box
	Tint   *Tint
	Lines  []TextLine

	// Read-only game values for shells that present them differently
	Target           core.Target
	Score            int
	RemainingSeconds int
	Accuracy         float64
	Pass             bool
}

// HasBackdrop reports whether a camera image should be drawn under the overlay
func (in *Intent) HasBackdrop() bool {
	return in.Backdrop != nil && !in.Backdrop.Bounds().Empty()
}
