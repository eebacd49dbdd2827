package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// PlainRenderer emits frames as plain rows of text, top to bottom. With
// rewind enabled it moves the cursor back up after each frame so the
// next one overdraws it in place, which animates on any ANSI terminal
// without an alternate screen.
type PlainRenderer struct {
	w      io.Writer
	rewind bool
}

// NewPlainRenderer creates a sink writing rows to w. Enable rewind only
// when w is an interactive terminal; piped output wants the frames
// appended, not overdrawn.
func NewPlainRenderer(w io.Writer, rewind bool) *PlainRenderer {
	return &PlainRenderer{w: w, rewind: rewind}
}

// Emit writes the frame's rows followed by a newline each, then rewinds
// the cursor when configured. The frame is written in a single call so
// a slow writer cannot interleave partial frames.
func (p *PlainRenderer) Emit(f *Frame) error {
	var b strings.Builder
	b.Grow((f.Width + 1) * f.Height)
	for y := 0; y < f.Height; y++ {
		b.WriteString(f.Row(y))
		b.WriteByte('\n')
	}
	if p.rewind {
		b.WriteString(ansi.CursorUp(f.Height))
	}
	_, err := io.WriteString(p.w, b.String())
	return err
}
