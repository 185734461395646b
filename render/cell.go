package render

import "github.com/lixenwraith/colorhunt/core"

// Attr is a cell text attribute bitmask
type Attr uint8

const (
	AttrNone Attr = 0
	AttrBold Attr = 1 << iota
)

// Cell is one terminal position
type Cell struct {
	Rune  rune
	Fg    core.RGB
	Bg    core.RGB
	Attrs Attr
}
