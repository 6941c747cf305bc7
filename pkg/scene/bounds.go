package scene

import (
	"math"

	"github.com/taigrr/flatshade/pkg/math3d"
)

// BoundingBox is the screen-plane extent of a scene's vertices.
type BoundingBox struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Width returns MaxX - MinX.
func (b BoundingBox) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns MaxY - MinY.
func (b BoundingBox) Height() float64 {
	return b.MaxY - b.MinY
}

// Center returns the midpoint of the box in the z=0 plane.
func (b BoundingBox) Center() math3d.Vec3 {
	return math3d.V3(b.MinX, b.MinY, 0).Add(math3d.V3(b.MaxX, b.MaxY, 0)).Scale(0.5)
}

// Bounds computes the bounding box over every vertex of every triangle.
// An empty scene yields the zero box.
func (s *Scene) Bounds() BoundingBox {
	if len(s.Triangles) == 0 {
		return BoundingBox{}
	}

	b := BoundingBox{
		MinX: math.Inf(1),
		MaxX: math.Inf(-1),
		MinY: math.Inf(1),
		MaxY: math.Inf(-1),
	}
	for _, t := range s.Triangles {
		for _, v := range t.V {
			// One vertex can be an extreme on both axes, so each
			// extent is checked on its own.
			if v.X < b.MinX {
				b.MinX = v.X
			}
			if v.X > b.MaxX {
				b.MaxX = v.X
			}
			if v.Y < b.MinY {
				b.MinY = v.Y
			}
			if v.Y > b.MaxY {
				b.MaxY = v.Y
			}
		}
	}
	return b
}

// viewportCenter returns the centre of a width x height viewport.
func viewportCenter(width, height int) math3d.Vec3 {
	return math3d.V3(float64(width)/2, float64(height)/2, 0)
}

// Fit derives the uniform scale that makes the box about one third of the
// viewport width, and the offset that then moves the scaled box's centre to
// the viewport centre. The scale is taken about the origin, so a point p
// lands at p*scale + offset.
//
// A box whose width rounds to zero cannot be measured and keeps scale 1.
func Fit(b BoundingBox, width, height int) (scale float64, offset math3d.Vec3) {
	scale = 1
	if extent := math.Round(b.Width()); extent != 0 {
		scale = (float64(width) / 3) / extent
	}
	offset = viewportCenter(width, height).Sub(b.Center().Scale(scale))
	return scale, offset
}

// FitTransform returns Fit's result as a single transform: scale, then
// translate.
func FitTransform(b BoundingBox, width, height int) math3d.Mat4 {
	scale, offset := Fit(b, width, height)
	return math3d.ScaleUniform(scale).Then(math3d.Translate(offset))
}

// Normalize scales s to fit the viewport and centres it. It is applied once
// after loading and again whenever the viewport changes size.
func Normalize(s *Scene, width, height int) *Scene {
	return s.Transform(FitTransform(s.Bounds(), width, height))
}

// Center translates s so its bounding box centre sits on the viewport
// centre, without rescaling. Rotation moves the box, so this runs after
// every rotation.
func Center(s *Scene, width, height int) *Scene {
	offset := viewportCenter(width, height).Sub(s.Bounds().Center())
	return s.Transform(math3d.Translate(offset))
}
