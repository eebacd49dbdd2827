package render

import (
	"github.com/cubespin/cubespin/pkg/math3d"
)

// Backfacing reports whether a face winds away from the viewer, given
// its first three projected vertices. The test is the sign of the 2D
// cross product of the two leading edges; no 3D normals are involved.
//
// A zero cross product (degenerate or exactly edge-on face) counts as
// front-facing, so the strict inequality is load-bearing.
func Backfacing(p0, p1, p2 math3d.Vec2) bool {
	return p1.Sub(p0).Cross(p2.Sub(p1)) > 0
}
