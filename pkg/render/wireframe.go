package render

import (
	"math"

	"github.com/taigrr/flatshade/pkg/scene"
)

// DrawOutlines draws the edges of every front-facing triangle of s over fb.
// Outlines ignore the depth buffer.
func DrawOutlines(fb *Framebuffer, s *scene.Scene, c Color) {
	for _, t := range s.Triangles {
		if IsHidden(t) {
			continue
		}
		DrawTriangleOutline(fb, t, c)
	}
}

// DrawTriangleOutline draws the three edges of t. Triangles with a
// non-finite vertex are skipped.
func DrawTriangleOutline(fb *Framebuffer, t scene.Triangle, c Color) {
	if !t.IsFinite() {
		return
	}
	for i := range 3 {
		a, b := t.V[i], t.V[(i+1)%3]
		// Clip with a one pixel margin so the integer conversion below
		// stays in range; DrawLine clips to the exact bounds.
		x0, y0, x1, y1, ok := clipSegment(a.X, a.Y, b.X, b.Y,
			-1, -1, float64(fb.Width), float64(fb.Height))
		if !ok {
			continue
		}
		fb.DrawLine(
			int(math.Floor(x0)), int(math.Floor(y0)),
			int(math.Floor(x1)), int(math.Floor(y1)),
			c,
		)
	}
}
