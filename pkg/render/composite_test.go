package render

import (
	"math"
	"testing"
)

func TestCompositeSpan(t *testing.T) {
	fb := NewFramebuffer(20, 4, ColorWhite)
	e := NewEdgeList(1, 2)
	e.AddRow(0, 2.5, 0)
	e.AddRow(0, 6.9, 8)

	red := RGB(255, 0, 0)
	Composite(fb, e, red)

	// Columns [floor(2.5), floor(6.9)) = [2, 6).
	for x := range fb.Width {
		want := ColorWhite
		if x >= 2 && x < 6 {
			want = red
		}
		if got := fb.GetPixel(x, 1); got != want {
			t.Errorf("pixel (%d,1) = %v, want %v", x, got, want)
		}
	}
	if got := fb.DepthAt(2, 1); got != 0 {
		t.Errorf("depth at left end = %g, want 0", got)
	}
	// slope = 8 / 4.4 per column
	if got, want := fb.DepthAt(4, 1), 2*8/4.4; math.Abs(got-want) > 1e-9 {
		t.Errorf("depth at x=4 = %g, want %g", got, want)
	}
	for _, y := range []int{0, 2, 3} {
		for x := range fb.Width {
			if fb.GetPixel(x, y) != ColorWhite {
				t.Fatalf("row %d touched", y)
			}
		}
	}
}

func TestCompositeSinglePixel(t *testing.T) {
	fb := NewFramebuffer(10, 10, ColorWhite)
	e := NewEdgeList(0, 1)
	e.AddRow(0, 3.2, 7)
	e.AddRow(0, 3.8, 9)

	Composite(fb, e, ColorBlack)

	if got := fb.GetPixel(3, 0); got != ColorBlack {
		t.Errorf("pixel (3,0) = %v, want black", got)
	}
	if got := fb.DepthAt(3, 0); got != 7 {
		t.Errorf("depth = %g, want LeftZ 7", got)
	}
	if fb.GetPixel(4, 0) != ColorWhite || fb.GetPixel(2, 0) != ColorWhite {
		t.Error("single-pixel span spilled into neighbours")
	}
}

func TestCompositeClipping(t *testing.T) {
	t.Run("left columns keep depth in step", func(t *testing.T) {
		fb := NewFramebuffer(10, 1, ColorWhite)
		e := NewEdgeList(0, 1)
		e.AddRow(0, -5, 0)
		e.AddRow(0, 5, 10)
		Composite(fb, e, ColorBlack)

		for x := range 5 {
			if fb.GetPixel(x, 0) != ColorBlack {
				t.Errorf("pixel %d not drawn", x)
			}
		}
		if fb.GetPixel(5, 0) != ColorWhite {
			t.Error("right end is exclusive")
		}
		if got := fb.DepthAt(0, 0); math.Abs(got-5) > 1e-9 {
			t.Errorf("depth at x=0 = %g, want 5", got)
		}
	})

	t.Run("right columns dropped", func(t *testing.T) {
		fb := NewFramebuffer(4, 1, ColorWhite)
		e := NewEdgeList(0, 1)
		e.AddRow(0, 2, 0)
		e.AddRow(0, 1000, 0)
		Composite(fb, e, ColorBlack)
		if fb.GetPixel(1, 0) != ColorWhite || fb.GetPixel(3, 0) != ColorBlack {
			t.Error("span not clipped to [2, width)")
		}
	})

	t.Run("rows outside the buffer", func(t *testing.T) {
		fb := NewFramebuffer(4, 2, ColorWhite)
		e := NewEdgeList(-3, 6)
		for i := range e.Len() {
			e.AddRow(i, 0, 0)
			e.AddRow(i, 4, 0)
		}
		Composite(fb, e, ColorBlack)
		for y := range 2 {
			for x := range 4 {
				if fb.GetPixel(x, y) != ColorBlack {
					t.Errorf("pixel (%d,%d) not drawn", x, y)
				}
			}
		}
	})

	t.Run("unset rows skipped", func(t *testing.T) {
		fb := NewFramebuffer(4, 4, ColorWhite)
		Composite(fb, NewEdgeList(0, 4), ColorBlack)
		for i, p := range fb.Pixels {
			if p != ColorWhite {
				t.Fatalf("pixel %d drawn from an unset row", i)
			}
		}
	})
}

func TestCompositeDepthTest(t *testing.T) {
	span := func(z float64) *EdgeList {
		e := NewEdgeList(0, 1)
		e.AddRow(0, 0, z)
		e.AddRow(0, 4, z)
		return e
	}
	red, blue := RGB(255, 0, 0), RGB(0, 0, 255)

	fb := NewFramebuffer(4, 1, ColorWhite)
	Composite(fb, span(5), red)
	Composite(fb, span(9), blue)
	if fb.GetPixel(0, 0) != red {
		t.Error("farther span overwrote nearer one")
	}

	Composite(fb, span(5), blue)
	if fb.GetPixel(0, 0) != red {
		t.Error("equal depth overwrote existing pixel")
	}

	Composite(fb, span(1), blue)
	if fb.GetPixel(0, 0) != blue {
		t.Error("nearer span did not win")
	}
}
