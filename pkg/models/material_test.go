package models

import (
	"image/color"
	"testing"

	"github.com/taigrr/flatshade/pkg/math3d"
)

func TestMaterialReflectance(t *testing.T) {
	tests := []struct {
		name  string
		color [4]float64
		want  color.RGBA
	}{
		{"white", [4]float64{1, 1, 1, 1}, color.RGBA{255, 255, 255, 255}},
		{"half", [4]float64{0.5, 0.5, 0.5, 1}, color.RGBA{128, 128, 128, 255}},
		{"clamped", [4]float64{-1, 2, 0, 0}, color.RGBA{0, 255, 0, 255}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := Material{BaseColor: tc.color}
			if got := m.Reflectance(); got != tc.want {
				t.Errorf("Reflectance = %v, want %v", got, tc.want)
			}
		})
	}
}

// TestFaceMaterialIndex verifies per-face material assignment.
func TestFaceMaterialIndex(t *testing.T) {
	mesh := NewMesh("test")
	mesh.Materials = []Material{
		{Name: "red", BaseColor: [4]float64{1, 0, 0, 1}},
		{Name: "green", BaseColor: [4]float64{0, 1, 0, 1}},
	}
	mesh.Faces = []Face{
		{V: [3]int{0, 1, 2}, Material: 0},
		{V: [3]int{3, 4, 5}, Material: 1},
		{V: [3]int{6, 7, 8}, Material: -1},
		{V: [3]int{9, 10, 11}, Material: 7},
	}

	if mesh.GetFaceMaterial(1) != 1 {
		t.Errorf("Face 1 should have material 1, got %d", mesh.GetFaceMaterial(1))
	}
	if mat := mesh.GetMaterial(0); mat == nil || mat.Name != "red" {
		t.Errorf("GetMaterial(0) should return 'red' material")
	}
	if mesh.MaterialCount() != len(mesh.Materials) {
		t.Errorf("MaterialCount = %d, want %d", mesh.MaterialCount(), len(mesh.Materials))
	}
	if mesh.GetMaterial(-1) != nil || mesh.GetMaterial(99) != nil {
		t.Errorf("GetMaterial should return nil out of bounds")
	}

	want := []color.RGBA{
		{255, 0, 0, 255},
		{0, 255, 0, 255},
		DefaultReflectance,
		DefaultReflectance,
	}
	for i, w := range want {
		if got := mesh.FaceReflectance(i); got != w {
			t.Errorf("FaceReflectance(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestMeshClone(t *testing.T) {
	mesh := NewMesh("original")
	mesh.Vertices = []math3d.Vec3{{X: 1}, {Y: 1}, {Z: 1}}
	mesh.Materials = []Material{{Name: "mat1"}}
	mesh.Faces = []Face{{V: [3]int{0, 1, 2}, Material: 0}}

	clone := mesh.Clone()
	clone.Materials[0].Name = "modified"
	clone.Vertices[0] = math3d.V3(9, 9, 9)

	if mesh.Materials[0].Name == "modified" {
		t.Errorf("Clone should have independent material copy")
	}
	if mesh.Vertices[0] != math3d.V3(1, 0, 0) {
		t.Errorf("Clone should have independent vertex copy")
	}
	if clone.TriangleCount() != 1 || clone.VertexCount() != 3 {
		t.Errorf("Clone counts = %d, %d", clone.TriangleCount(), clone.VertexCount())
	}
}

func TestMeshScene(t *testing.T) {
	mesh := NewMesh("quad")
	mesh.Vertices = []math3d.Vec3{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	mesh.Materials = []Material{{BaseColor: [4]float64{0, 0, 1, 1}}}
	mesh.Faces = []Face{
		{V: [3]int{0, 1, 2}, Material: 0},
		{V: [3]int{0, 2, 3}, Material: -1},
	}

	light := math3d.V3(0, 0, -1)
	s := mesh.Scene(light)
	if s.Len() != 2 || s.Light != light {
		t.Fatalf("scene = %d triangles, light %v", s.Len(), s.Light)
	}
	if s.Triangles[1].V[2] != math3d.V3(0, 1, 0) {
		t.Errorf("triangle 1 vertex 2 = %v", s.Triangles[1].V[2])
	}
	if s.Triangles[0].Reflectance != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("triangle 0 reflectance = %v", s.Triangles[0].Reflectance)
	}
	if s.Triangles[1].Reflectance != DefaultReflectance {
		t.Errorf("triangle 1 reflectance = %v", s.Triangles[1].Reflectance)
	}
}
