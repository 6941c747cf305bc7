// Package models loads flatshade scenes: the plain-text triangle format,
// glTF/GLB meshes and procedurally generated SDF primitives.
package models

import (
	"image/color"

	"github.com/taigrr/flatshade/pkg/math3d"
	"github.com/taigrr/flatshade/pkg/scene"
)

// DefaultReflectance is used for faces without a material.
var DefaultReflectance = color.RGBA{200, 200, 200, 255}

// DefaultLight is the light direction given to formats that carry none.
// It lights faces pointing up, left and toward the viewer.
var DefaultLight = math3d.V3(-1, -1, -1)

// Mesh is an indexed triangle mesh as read from a model file.
type Mesh struct {
	Name      string
	Vertices  []math3d.Vec3
	Faces     []Face
	Materials []Material
}

// Face represents a triangle face with vertex indices and material reference.
type Face struct {
	V        [3]int // Indices into Mesh.Vertices
	Material int    // Index into Mesh.Materials (-1 for no material)
}

// Material is the part of a glTF PBR material that flat shading uses.
type Material struct {
	Name      string
	BaseColor [4]float64 // RGBA in 0-1 range
}

// Reflectance converts the base color to 0-255 channels.
func (m Material) Reflectance() color.RGBA {
	return color.RGBA{
		R: unitToByte(m.BaseColor[0]),
		G: unitToByte(m.BaseColor[1]),
		B: unitToByte(m.BaseColor[2]),
		A: 255,
	}
}

func unitToByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]math3d.Vec3, 0),
		Faces:    make([]Face, 0),
	}
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Transform applies a transformation matrix to all vertices.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Vertices {
		m.Vertices[i] = mat.MulVec3(m.Vertices[i])
	}
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]math3d.Vec3, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		Materials: make([]Material, len(m.Materials)),
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	copy(clone.Materials, m.Materials)
	return clone
}

// GetFaceMaterial returns the material index for face i.
// Returns -1 if no material assigned.
func (m *Mesh) GetFaceMaterial(i int) int {
	return m.Faces[i].Material
}

// GetMaterial returns the material at index i.
// Returns nil if index is out of bounds or -1.
func (m *Mesh) GetMaterial(i int) *Material {
	if i < 0 || i >= len(m.Materials) {
		return nil
	}
	return &m.Materials[i]
}

// MaterialCount returns the number of materials.
func (m *Mesh) MaterialCount() int {
	return len(m.Materials)
}

// FaceReflectance returns the reflectance of face i: its material's base
// color, or DefaultReflectance.
func (m *Mesh) FaceReflectance(i int) color.RGBA {
	if mat := m.GetMaterial(m.Faces[i].Material); mat != nil {
		return mat.Reflectance()
	}
	return DefaultReflectance
}

// Scene flattens the mesh into a scene lit from light.
func (m *Mesh) Scene(light math3d.Vec3) *scene.Scene {
	tris := make([]scene.Triangle, len(m.Faces))
	for i, f := range m.Faces {
		tris[i] = scene.Triangle{
			V: [3]math3d.Vec3{
				m.Vertices[f.V[0]],
				m.Vertices[f.V[1]],
				m.Vertices[f.V[2]],
			},
			Reflectance: m.FaceReflectance(i),
		}
	}
	return &scene.Scene{Triangles: tris, Light: light}
}
