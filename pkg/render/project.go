package render

import (
	"github.com/cubespin/cubespin/pkg/math3d"
)

// Viewport maps camera-space points onto the character grid: perspective
// division by z, then scale by the half extents and offset to the grid
// center.
type Viewport struct {
	ScaleX  float32
	ScaleY  float32
	OffsetX float32
	OffsetY float32
}

// NewViewport creates a viewport covering a width x height grid.
func NewViewport(width, height int) Viewport {
	halfW := float32(width) * 0.5
	halfH := float32(height) * 0.5
	return Viewport{
		ScaleX:  halfW,
		ScaleY:  halfH,
		OffsetX: halfW,
		OffsetY: halfH,
	}
}

// Project converts a camera-space point to grid coordinates.
//
// The point's z must be non-zero; a z near zero blows the coordinates
// up. That case is not guarded here: the camera translation keeps every
// vertex's z bounded away from zero for all orientations, so it cannot
// occur with the fixed geometry.
func (v Viewport) Project(p math3d.Vec4) math3d.Vec2 {
	recipZ := 1 / p.Z
	return math3d.V2(
		p.X*recipZ*v.ScaleX+v.OffsetX,
		p.Y*recipZ*v.ScaleY+v.OffsetY,
	)
}
