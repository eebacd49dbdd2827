package render

import (
	"testing"

	"github.com/cubespin/cubespin/pkg/math3d"
)

func TestBackfacing(t *testing.T) {
	tests := []struct {
		name       string
		p0, p1, p2 math3d.Vec2
		want       bool
	}{
		// In grid space y grows downward, so this order turns left.
		{"left turn", math3d.V2(0, 0), math3d.V2(10, 0), math3d.V2(10, 10), true},
		{"right turn", math3d.V2(10, 10), math3d.V2(10, 0), math3d.V2(0, 0), false},
		{"shallow left turn", math3d.V2(0, 0), math3d.V2(5, 1), math3d.V2(9, 3), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Backfacing(tc.p0, tc.p1, tc.p2); got != tc.want {
				t.Errorf("Backfacing = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBackfacingWindingSymmetry(t *testing.T) {
	// Reversing the vertex order flips the decision for any
	// non-degenerate triangle.
	triangles := [][3]math3d.Vec2{
		{math3d.V2(3, 4), math3d.V2(17, 2), math3d.V2(9, 30)},
		{math3d.V2(0, 0), math3d.V2(1, 50), math3d.V2(-40, 8)},
		{math3d.V2(12.5, 7.25), math3d.V2(60, 33.3), math3d.V2(2, 39)},
	}

	for i, tri := range triangles {
		fwd := Backfacing(tri[0], tri[1], tri[2])
		rev := Backfacing(tri[2], tri[1], tri[0])
		if fwd == rev {
			t.Errorf("triangle %d: winding reversal did not flip the decision", i)
		}
	}
}

func TestBackfacingDegenerateNotCulled(t *testing.T) {
	// Collinear points give a zero cross product; the tie-break keeps
	// edge-on faces visible in both orders.
	p0, p1, p2 := math3d.V2(1, 1), math3d.V2(3, 3), math3d.V2(7, 7)
	if Backfacing(p0, p1, p2) {
		t.Error("collinear points should not be culled")
	}
	if Backfacing(p2, p1, p0) {
		t.Error("collinear points should not be culled in reverse order")
	}

	// Coincident points are degenerate too.
	q := math3d.V2(5, 5)
	if Backfacing(q, q, q) {
		t.Error("coincident points should not be culled")
	}
}
