package models

import (
	"fmt"
	"slices"
	"strings"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/taigrr/flatshade/pkg/math3d"
	"github.com/taigrr/flatshade/pkg/scene"
)

// DefaultPrimitiveCells controls marching cubes tessellation resolution
// along the longest axis of a primitive.
const DefaultPrimitiveCells = 24

// primitives maps a primitive name to its signed distance field.
var primitives = map[string]func() (sdf.SDF3, error){
	"sphere": func() (sdf.SDF3, error) {
		return sdf.Sphere3D(50)
	},
	"box": func() (sdf.SDF3, error) {
		return sdf.Box3D(v3.Vec{X: 100, Y: 60, Z: 40}, 0)
	},
	"cylinder": func() (sdf.SDF3, error) {
		return sdf.Cylinder3D(100, 30, 0)
	},
}

// PrimitiveNames returns the names accepted by Primitive, sorted.
func PrimitiveNames() []string {
	names := make([]string, 0, len(primitives))
	for name := range primitives {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Primitive tessellates a named solid into a scene with the default
// reflectance and light. cells sets the marching cubes resolution; values
// below 1 use DefaultPrimitiveCells.
func Primitive(name string, cells int) (*scene.Scene, error) {
	build, ok := primitives[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown primitive %q (want one of %s): %w",
			name, strings.Join(PrimitiveNames(), ", "), ErrUnsupportedFormat)
	}
	if cells < 1 {
		cells = DefaultPrimitiveCells
	}

	s, err := build()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", name, err)
	}

	triangles := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))

	mesh := NewMesh(name)
	for _, tri := range triangles {
		base := len(mesh.Vertices)
		for j := range 3 {
			mesh.Vertices = append(mesh.Vertices, math3d.V3(tri[j].X, tri[j].Y, tri[j].Z))
		}
		mesh.Faces = append(mesh.Faces, Face{V: [3]int{base, base + 1, base + 2}, Material: -1})
	}

	// Same right-handed, y-up convention as glTF.
	mesh.Transform(NewGLTFLoader().ToScreen)
	return mesh.Scene(DefaultLight), nil
}
