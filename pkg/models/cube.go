// Package models provides the static geometry rendered by cubespin.
package models

import (
	"github.com/cubespin/cubespin/pkg/math3d"
)

// Mesh is an indexed quad mesh in object space. Vertices are homogeneous
// points with W = 1; every face lists exactly four vertex indices with a
// consistent winding, so a single screen-space test can decide visibility
// for all of them.
type Mesh struct {
	Vertices []math3d.Vec4
	Faces    [][4]int
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// Cube returns the unit cube centered on the origin.
//
// Vertex numbering:
//
//	4    +------+  6
//	    /|     /|
//	5  +------+ |  7
//	   | |    | |
//	0  | +----|-+  2
//	   |/     |/
//	1  +------+    3
func Cube() *Mesh {
	return &Mesh{
		Vertices: []math3d.Vec4{
			math3d.V4(-1, -1, -1, 1),
			math3d.V4(-1, -1, 1, 1),
			math3d.V4(1, -1, -1, 1),
			math3d.V4(1, -1, 1, 1),
			math3d.V4(-1, 1, -1, 1),
			math3d.V4(-1, 1, 1, 1),
			math3d.V4(1, 1, -1, 1),
			math3d.V4(1, 1, 1, 1),
		},
		Faces: [][4]int{
			{1, 5, 7, 3}, // z = +1
			{3, 7, 6, 2}, // x = +1
			{0, 4, 5, 1}, // x = -1
			{2, 6, 4, 0}, // z = -1
			{0, 1, 3, 2}, // y = -1
			{5, 4, 6, 7}, // y = +1
		},
	}
}
