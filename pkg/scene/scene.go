// Package scene holds the triangle model rendered by flatshade and the
// operations that reposition it: pure transform application and the
// bounding-box fit that maps a model into the viewport.
package scene

import (
	"image/color"

	"github.com/taigrr/flatshade/pkg/math3d"
)

// Triangle is a flat-coloured polygon with exactly three vertices.
// Vertex order is significant: it defines the winding used for backface
// culling and the direction of the face normal.
type Triangle struct {
	V           [3]math3d.Vec3
	Reflectance color.RGBA // Per-channel reflectance on a 0-255 scale
}

// NewTriangle creates a triangle from three vertices and an RGB reflectance.
func NewTriangle(v0, v1, v2 math3d.Vec3, r, g, b uint8) Triangle {
	return Triangle{
		V:           [3]math3d.Vec3{v0, v1, v2},
		Reflectance: color.RGBA{r, g, b, 255},
	}
}

// Normal returns the unnormalized face normal cross(v1-v0, v2-v1).
func (t Triangle) Normal() math3d.Vec3 {
	return t.V[1].Sub(t.V[0]).Cross(t.V[2].Sub(t.V[1]))
}

// IsFinite reports whether every vertex coordinate is finite.
func (t Triangle) IsFinite() bool {
	return t.V[0].IsFinite() && t.V[1].IsFinite() && t.V[2].IsFinite()
}

// Transform returns a copy of the triangle with every vertex mapped by m.
func (t Triangle) Transform(m math3d.Mat4) Triangle {
	out := t
	for i := range out.V {
		out.V[i] = m.MulVec3(t.V[i])
	}
	return out
}

// Scene is an ordered list of triangles lit by one directional light.
//
// A Scene is treated as immutable: Transform, Rotate, Normalize and Center
// return a new Scene backed by its own triangle slice, so a caller holding
// the previous value never observes a change.
type Scene struct {
	Triangles []Triangle
	Light     math3d.Vec3 // Direction of the directional light
}

// New creates a scene from a copy of tris.
func New(tris []Triangle, light math3d.Vec3) *Scene {
	s := &Scene{
		Triangles: make([]Triangle, len(tris)),
		Light:     light,
	}
	copy(s.Triangles, tris)
	return s
}

// Len returns the number of triangles.
func (s *Scene) Len() int {
	return len(s.Triangles)
}

// VertexCount returns the number of vertices (three per triangle).
func (s *Scene) VertexCount() int {
	return 3 * len(s.Triangles)
}

// Clone creates a deep copy of the scene.
func (s *Scene) Clone() *Scene {
	return New(s.Triangles, s.Light)
}

// Transform returns a new scene with every vertex mapped by m.
// The light direction is left alone: it is fixed relative to the viewer.
func (s *Scene) Transform(m math3d.Mat4) *Scene {
	out := &Scene{
		Triangles: make([]Triangle, len(s.Triangles)),
		Light:     s.Light,
	}
	for i, t := range s.Triangles {
		out.Triangles[i] = t.Transform(m)
	}
	return out
}

// Rotate returns a new scene rotated about the X axis by xRot and then about
// the Y axis by yRot (radians). Rotation is about the origin, so callers
// normally re-center the result.
func (s *Scene) Rotate(xRot, yRot float64) *Scene {
	return s.Transform(math3d.RotateX(xRot).Then(math3d.RotateY(yRot)))
}
