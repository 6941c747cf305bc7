package render

import "math"

// Composite writes the spans of an edge list into fb in color c.
//
// Each set row covers columns [floor(LeftX), floor(RightX)) with depth
// interpolated linearly from LeftZ. A row whose ends share a column draws
// that single pixel at LeftZ. Pixels are written only where z is strictly
// nearer than the stored depth; anything outside the framebuffer is
// dropped.
func Composite(fb *Framebuffer, e *EdgeList, c Color) {
	for i := range e.Len() {
		row := e.Row(i)
		if !row.Set {
			continue
		}
		y := i + e.StartY
		if y < 0 || y >= fb.Height {
			continue
		}

		xl := int(math.Floor(row.LeftX))
		xr := int(math.Floor(row.RightX))
		if xl == xr {
			if xl >= 0 && xl < fb.Width {
				fb.plot(xl, y, row.LeftZ, c)
			}
			continue
		}

		slope := (row.RightZ - row.LeftZ) / (row.RightX - row.LeftX)
		z := row.LeftZ
		x := xl
		if x < 0 {
			// Skip the off-screen columns but keep z in step.
			z += slope * float64(-x)
			x = 0
		}
		end := min(xr, fb.Width)
		for ; x < end; x++ {
			fb.plot(x, y, z, c)
			z += slope
		}
	}
}
