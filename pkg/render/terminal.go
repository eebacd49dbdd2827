package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// TerminalRenderer emits frames as terminal cells through ultraviolet.
// Every cell of the grid is repainted each frame; the frame is the whole
// screen state, so no diffing against previous ticks is needed here.
type TerminalRenderer struct {
	term   *uv.Terminal
	width  int
	height int
	fg     color.Color
}

// NewTerminalRenderer creates a sink drawing to the given terminal.
// Glyphs are drawn in the given foreground color; nil leaves the
// terminal's default.
func NewTerminalRenderer(term *uv.Terminal, width, height int, fg color.Color) *TerminalRenderer {
	return &TerminalRenderer{
		term:   term,
		width:  width,
		height: height,
		fg:     fg,
	}
}

// Emit draws the frame onto the terminal screen and flushes it.
func (t *TerminalRenderer) Emit(f *Frame) error {
	rows := min(f.Height, t.height)
	cols := min(f.Width, t.width)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			glyph := f.At(x, y)
			cell := &uv.Cell{
				Content: string(rune(glyph)),
				Width:   1,
			}
			if glyph != Blank {
				cell.Style = uv.Style{Fg: t.fg}
			}
			t.term.SetCell(x, y, cell)
		}
	}
	return t.term.Display()
}
