package render

import (
	"github.com/cubespin/cubespin/pkg/math3d"
)

// Glyphs used by the line rasterizer. Steep lines read better as bars,
// shallow ones as dashes.
const (
	GlyphVertical   = '|'
	GlyphHorizontal = '-'
)

// DrawLine rasterizes a single-pixel line between two grid-space points
// using axis-selected incremental scan conversion. Whichever axis the
// line moves along fastest is stepped over integer cells; the other
// coordinate is linearly interpolated.
//
// Both branches iterate the half-open range [ceil(min), ceil(max)), so
// segments sharing an endpoint never double-draw it and never leave a
// gap. A zero-length segment falls into the shallow branch and draws
// nothing.
//
// DrawLine performs no bounds checking; see Frame.Set.
func DrawLine(f *Frame, start, end math3d.Vec2) {
	dx := end.X - start.X
	dy := end.Y - start.Y

	if math3d.Abs(dy) > math3d.Abs(dx) {
		yMin := math3d.Min(start.Y, end.Y)
		yMax := math3d.Max(start.Y, end.Y)
		dxdy := dx / dy
		for y := int(math3d.Ceil(yMin)); y < int(math3d.Ceil(yMax)); y++ {
			x := int((float32(y)-start.Y)*dxdy + start.X)
			f.Set(x, y, GlyphVertical)
		}
	} else {
		xMin := math3d.Min(start.X, end.X)
		xMax := math3d.Max(start.X, end.X)
		dydx := dy / dx
		for x := int(math3d.Ceil(xMin)); x < int(math3d.Ceil(xMax)); x++ {
			y := int((float32(x)-start.X)*dydx + start.Y)
			f.Set(x, y, GlyphHorizontal)
		}
	}
}
