package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/colorhunt/core"
)

// Screen flushes render buffers to a tcell screen
type Screen struct {
	screen tcell.Screen
}

// NewScreen wraps an initialized tcell screen
func NewScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

// Size returns the terminal dimensions in cells
func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// Flush writes every cell and shows the frame
func (s *Screen) Flush(buf *RenderBuffer) {
	buf.finalize()
	for y := 0; y < buf.height; y++ {
		row := buf.cells[y*buf.width : (y+1)*buf.width]
		for x, c := range row {
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			s.screen.SetContent(x, y, r, nil, cellStyle(c))
		}
	}
	s.screen.Show()
}

func cellStyle(c Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcellColor(c.Fg)).
		Background(tcellColor(c.Bg)).
		Bold(c.Attrs&AttrBold != 0)
}

func tcellColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
