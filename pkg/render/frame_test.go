package render

import (
	"strings"
	"testing"
)

func TestNewFrameBlank(t *testing.T) {
	f := NewFrame(10, 4)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if f.At(x, y) != Blank {
				t.Fatalf("cell (%d,%d) = %q, want blank", x, y, f.At(x, y))
			}
		}
	}
}

func TestFrameSetAt(t *testing.T) {
	f := NewFrame(10, 4)
	f.Set(3, 2, GlyphVertical)
	if f.At(3, 2) != GlyphVertical {
		t.Errorf("At(3,2) = %q, want %q", f.At(3, 2), GlyphVertical)
	}
	if f.At(2, 3) != Blank {
		t.Errorf("At(2,3) = %q, want blank", f.At(2, 3))
	}
}

func TestFrameClear(t *testing.T) {
	f := NewFrame(6, 3)
	f.Set(1, 1, GlyphHorizontal)
	f.Clear()
	if f.At(1, 1) != Blank {
		t.Errorf("cell survived Clear")
	}
}

func TestFrameRowString(t *testing.T) {
	f := NewFrame(4, 2)
	f.Set(0, 1, GlyphHorizontal)
	f.Set(3, 1, GlyphVertical)

	if got := f.Row(0); got != "    " {
		t.Errorf("Row(0) = %q", got)
	}
	if got := f.Row(1); got != "-  |" {
		t.Errorf("Row(1) = %q", got)
	}
	want := "    \n-  |\n"
	if got := f.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if strings.Count(f.String(), "\n") != f.Height {
		t.Errorf("String() should end each row with a newline")
	}
}
