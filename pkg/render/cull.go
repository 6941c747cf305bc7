package render

import "github.com/taigrr/flatshade/pkg/scene"

// IsHidden reports whether a triangle faces away from the viewer.
//
// Only the projected x and y of each vertex are read: the test is the sign
// of the z component of cross(v1-v0, v2-v1). With smaller z nearer, a
// positive z component points away from the viewer. Degenerate triangles
// (zero projected area) are not hidden.
func IsHidden(t scene.Triangle) bool {
	v0, v1, v2 := t.V[0], t.V[1], t.V[2]
	return (v1.X-v0.X)*(v2.Y-v1.Y) > (v1.Y-v0.Y)*(v2.X-v1.X)
}
