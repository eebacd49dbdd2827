// Package render provides the software wireframe pipeline for cubespin:
// perspective projection, backface culling, line rasterization, and the
// sinks that put finished frames on screen.
package render

import "strings"

// Blank is the background glyph of an empty frame cell.
const Blank = ' '

// Frame is a fixed-size character grid, stored row-major. A frame is
// built fresh every tick, filled by the rasterizer, handed to a sink,
// and discarded; nothing is carried between ticks.
type Frame struct {
	Width  int
	Height int
	Cells  []byte
}

// NewFrame creates a blank frame of the given dimensions.
func NewFrame(width, height int) *Frame {
	f := &Frame{
		Width:  width,
		Height: height,
		Cells:  make([]byte, width*height),
	}
	f.Clear()
	return f
}

// Clear resets every cell to the background glyph.
func (f *Frame) Clear() {
	for i := range f.Cells {
		f.Cells[i] = Blank
	}
}

// Set writes a glyph at (x, y). No bounds checking: the fixed geometry
// and viewport guarantee in-range coordinates, and an out-of-range write
// is an invariant violation that should panic, not be masked.
func (f *Frame) Set(x, y int, glyph byte) {
	f.Cells[y*f.Width+x] = glyph
}

// At returns the glyph at (x, y).
func (f *Frame) At(x, y int) byte {
	return f.Cells[y*f.Width+x]
}

// Row returns row y as a string.
func (f *Frame) Row(y int) string {
	return string(f.Cells[y*f.Width : (y+1)*f.Width])
}

// String renders the frame as newline-separated rows, top to bottom.
func (f *Frame) String() string {
	var b strings.Builder
	b.Grow((f.Width + 1) * f.Height)
	for y := 0; y < f.Height; y++ {
		b.WriteString(f.Row(y))
		b.WriteByte('\n')
	}
	return b.String()
}
