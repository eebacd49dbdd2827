package render

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cubespin/cubespin/pkg/math3d"
	"github.com/cubespin/cubespin/pkg/models"
)

func TestSpinTransformAtZero(t *testing.T) {
	// Angle zero leaves the rotation as identity; the transform is the
	// pure view-axis translation.
	m := SpinTransform(0, 2.5)
	got := m.MulVec4(math3d.V4(-1, -1, -1, 1))
	want := math3d.V4(-1, -1, -3.5, 1)
	if got != want {
		t.Errorf("transform = %v, want %v", got, want)
	}
}

// cullCount projects the cube under a spin transform and counts faces
// the screen-space test rejects.
func cullCount(t *testing.T, angle float32) int {
	t.Helper()

	mesh := models.Cube()
	vp := NewViewport(80, 40)
	m := SpinTransform(angle, 2.5)

	screen := make([]math3d.Vec2, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		screen[i] = vp.Project(m.MulVec4(v))
	}

	culled := 0
	for _, face := range mesh.Faces {
		if Backfacing(screen[face[0]], screen[face[1]], screen[face[2]]) {
			culled++
		}
	}
	return culled
}

func TestCullCountHeadOn(t *testing.T) {
	// Looking straight down a face normal, perspective turns every side
	// face into a backface: only the near face survives.
	if got := cullCount(t, 0); got != 5 {
		t.Errorf("culled %d faces at angle 0, want 5", got)
	}
}

func TestCullCountMidSpin(t *testing.T) {
	// Past the angle where the camera crosses a side face's plane
	// (sin θ > 1/2.5), that face joins the near face: two visible.
	if got := cullCount(t, 0.5); got != 4 {
		t.Errorf("culled %d faces at angle 0.5, want 4", got)
	}

	// Just before the crossing only the near face shows.
	if got := cullCount(t, 0.3); got != 5 {
		t.Errorf("culled %d faces at angle 0.3, want 5", got)
	}
}

func TestRenderHeadOn(t *testing.T) {
	// At angle zero exactly one face is drawn: its corners project to
	// (13.33, 6.67) and (66.67, 33.33) on the 80x40 grid, so the half-
	// open rasterization covers columns 14..66 on two rows and rows
	// 7..33 on two columns.
	r := NewRenderer(models.Cube(), 80, 40)
	f := r.Render(SpinTransform(0, 2.5))

	var vertical, horizontal int
	for _, c := range f.Cells {
		switch c {
		case GlyphVertical:
			vertical++
		case GlyphHorizontal:
			horizontal++
		}
	}
	// Two 53-cell horizontal edges and two 27-cell vertical edges; the
	// corner (66,33) is written by the bottom edge and then overdrawn by
	// the right edge, so one horizontal cell goes missing.
	if horizontal != 2*53-1 {
		t.Errorf("horizontal cells = %d, want %d", horizontal, 2*53-1)
	}
	if vertical != 2*27 {
		t.Errorf("vertical cells = %d, want %d", vertical, 2*27)
	}

	// Spot-check the edges.
	if f.At(14, 6) != GlyphHorizontal || f.At(66, 6) != GlyphHorizontal {
		t.Error("top edge missing")
	}
	if f.At(14, 33) != GlyphHorizontal {
		t.Error("bottom edge missing")
	}
	if f.At(13, 7) != GlyphVertical || f.At(66, 33) != GlyphVertical {
		t.Error("side edges missing")
	}
	if f.At(40, 20) != Blank {
		t.Error("face interior should stay blank in a wireframe")
	}
}

func TestRenderIntoClearsFrame(t *testing.T) {
	r := NewRenderer(models.Cube(), 80, 40)
	f := NewFrame(80, 40)

	r.RenderInto(f, SpinTransform(0.9, 2.5))
	first := f.String()

	r.RenderInto(f, SpinTransform(0.2, 2.5))
	r.RenderInto(f, SpinTransform(0.9, 2.5))
	if f.String() != first {
		t.Error("stale cells from a previous tick leaked into the frame")
	}
}

func TestRenderStaysInBounds(t *testing.T) {
	// With the camera distance above √6, every projected vertex stays
	// strictly inside the grid for any orientation, so rasterization can
	// skip bounds checks. Frame.Set panics if this ever breaks.
	mesh := models.Cube()
	rng := rand.New(rand.NewSource(1))

	for _, size := range [][2]int{{80, 40}, {20, 10}, {120, 50}} {
		r := NewRenderer(mesh, size[0], size[1])
		vp := r.Viewport()
		f := NewFrame(size[0], size[1])

		for i := 0; i < 500; i++ {
			pitch := float32(rng.Float64() * 2 * math.Pi)
			yaw := float32(rng.Float64() * 2 * math.Pi)
			roll := float32(rng.Float64() * 2 * math.Pi)

			m := math3d.Translate(math3d.V3(0, 0, -2.5)).
				Mul(math3d.RotateX(pitch)).
				Mul(math3d.RotateY(yaw)).
				Mul(math3d.RotateZ(roll))

			for vi, v := range mesh.Vertices {
				cam := m.MulVec4(v)
				if cam.Z >= -0.5 {
					t.Fatalf("vertex %d reached z = %v; depth no longer bounded away from zero", vi, cam.Z)
				}
				p := vp.Project(cam)
				if p.X < 0 || p.X >= float32(size[0]) || p.Y < 0 || p.Y >= float32(size[1]) {
					t.Fatalf("vertex %d projected outside the %dx%d grid: (%v, %v)",
						vi, size[0], size[1], p.X, p.Y)
				}
			}

			r.RenderInto(f, m)
		}
	}
}

func BenchmarkRenderFrame(b *testing.B) {
	r := NewRenderer(models.Cube(), 80, 40)
	f := NewFrame(80, 40)

	angle := float32(0)
	for b.Loop() {
		r.RenderInto(f, SpinTransform(angle, 2.5))
		angle += 0.01
	}
}
