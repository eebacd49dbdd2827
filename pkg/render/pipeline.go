package render

import (
	"github.com/cubespin/cubespin/pkg/math3d"
	"github.com/cubespin/cubespin/pkg/models"
)

// Renderer runs the wireframe pipeline for one mesh: transform every
// vertex into camera space, project to the grid, cull backfaces, and
// rasterize the surviving edges.
type Renderer struct {
	mesh     *models.Mesh
	viewport Viewport
	width    int
	height   int
}

// NewRenderer creates a renderer targeting a width x height grid.
func NewRenderer(mesh *models.Mesh, width, height int) *Renderer {
	return &Renderer{
		mesh:     mesh,
		viewport: NewViewport(width, height),
		width:    width,
		height:   height,
	}
}

// Size returns the grid dimensions.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// Viewport returns the grid-space mapping used by the renderer.
func (r *Renderer) Viewport() Viewport {
	return r.viewport
}

// Render draws the mesh under the given object-to-camera transform into
// a fresh frame.
func (r *Renderer) Render(transform math3d.Mat4) *Frame {
	frame := NewFrame(r.width, r.height)
	r.RenderInto(frame, transform)
	return frame
}

// RenderInto draws the mesh under the given transform into an existing
// frame, which is cleared first. For each visible face the four edges
// are drawn by connecting every vertex to its predecessor in the index
// list, wrapping from the first back to the last.
func (r *Renderer) RenderInto(frame *Frame, transform math3d.Mat4) {
	frame.Clear()

	screen := make([]math3d.Vec2, len(r.mesh.Vertices))
	for i, v := range r.mesh.Vertices {
		screen[i] = r.viewport.Project(transform.MulVec4(v))
	}

	for _, face := range r.mesh.Faces {
		if Backfacing(screen[face[0]], screen[face[1]], screen[face[2]]) {
			continue
		}
		prev := face[3]
		for _, idx := range face {
			DrawLine(frame, screen[idx], screen[prev])
			prev = idx
		}
	}
}

// SpinTransform builds the per-tick model transform: a rotation around
// the Y axis composed with a translation pushing the mesh distance units
// down the view axis. A distance of at least the mesh's bounding radius
// times √2 keeps every projected coordinate strictly inside the grid for
// every orientation; for the unit cube that bound is √6 ≈ 2.45.
func SpinTransform(angle, distance float32) math3d.Mat4 {
	return math3d.Translate(math3d.V3(0, 0, -distance)).Mul(math3d.RotateY(angle))
}
