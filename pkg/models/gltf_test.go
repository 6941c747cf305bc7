package models

import (
	"encoding/binary"
	"image/color"
	"math"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"

	"github.com/taigrr/flatshade/pkg/math3d"
)

// writeTestGLB saves a single-primitive GLB with float positions and
// uint16 indices. A nil baseColor leaves the primitive without a material.
func writeTestGLB(t *testing.T, positions [][3]float32, indices []uint16, baseColor *[4]float64) string {
	t.Helper()

	var data []byte
	for _, p := range positions {
		for _, f := range p {
			data = binary.LittleEndian.AppendUint32(data, math.Float32bits(f))
		}
	}
	posLen := len(data)
	for _, i := range indices {
		data = binary.LittleEndian.AppendUint16(data, i)
	}
	for len(data)%4 != 0 {
		data = append(data, 0)
	}

	index := func(i int) *int { return &i }
	prim := &gltf.Primitive{
		Attributes: map[string]int{gltf.POSITION: 0},
		Indices:    index(1),
		Mode:       gltf.PrimitiveTriangles,
	}
	doc := &gltf.Document{
		Asset:   gltf.Asset{Version: "2.0"},
		Buffers: []*gltf.Buffer{{ByteLength: len(data), Data: data}},
		BufferViews: []*gltf.BufferView{
			{Buffer: 0, ByteOffset: 0, ByteLength: posLen},
			{Buffer: 0, ByteOffset: posLen, ByteLength: 2 * len(indices)},
		},
		Accessors: []*gltf.Accessor{
			{BufferView: index(0), ComponentType: gltf.ComponentFloat, Count: len(positions), Type: gltf.AccessorVec3},
			{BufferView: index(1), ComponentType: gltf.ComponentUshort, Count: len(indices), Type: gltf.AccessorScalar},
		},
		Meshes: []*gltf.Mesh{{Name: "test", Primitives: []*gltf.Primitive{prim}}},
	}
	if baseColor != nil {
		doc.Materials = []*gltf.Material{{
			Name:                 "paint",
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{BaseColorFactor: baseColor},
		}}
		prim.Material = index(0)
	}

	path := filepath.Join(t.TempDir(), "test.glb")
	if err := gltf.SaveBinary(doc, path); err != nil {
		t.Fatalf("save glb: %v", err)
	}
	return path
}

func TestLoadGLBInvalidPath(t *testing.T) {
	_, err := LoadGLB("/nonexistent/path.glb")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestGLTFLoaderCreation(t *testing.T) {
	loader := NewGLTFLoader()
	if loader == nil {
		t.Fatal("NewGLTFLoader returned nil")
	}
	if loader.Light != DefaultLight {
		t.Errorf("Light = %v, want %v", loader.Light, DefaultLight)
	}
	// y-up becomes y-down and +z toward the camera becomes -z.
	got := loader.ToScreen.MulVec3(math3d.V3(1, 2, 3))
	if !got.ApproxEqual(math3d.V3(1, -2, -3), 1e-9) {
		t.Errorf("ToScreen(1,2,3) = %v", got)
	}
}

func TestLoadGLB(t *testing.T) {
	// Counter-clockwise seen from +z: front-facing in glTF.
	path := writeTestGLB(t,
		[][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		[]uint16{0, 1, 2, 0, 2, 3},
		&[4]float64{1, 0.5, 0, 1},
	)

	mesh, err := NewGLTFLoader().Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if mesh.TriangleCount() != 2 || mesh.VertexCount() != 4 {
		t.Fatalf("counts = %d triangles, %d vertices", mesh.TriangleCount(), mesh.VertexCount())
	}
	if mesh.Name != "test.glb" {
		t.Errorf("Name = %q", mesh.Name)
	}

	s, err := LoadGLB(path)
	if err != nil {
		t.Fatalf("LoadGLB: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	if s.Light != DefaultLight {
		t.Errorf("light = %v", s.Light)
	}

	tri := s.Triangles[0]
	if !tri.V[2].ApproxEqual(math3d.V3(0, -1, 0), 1e-9) {
		t.Errorf("vertex 2 = %v, want (0,-1,0)", tri.V[2])
	}
	// The glTF front face must face the viewer (normal toward -z).
	if n := tri.Normal(); n.Z >= 0 {
		t.Errorf("normal = %v, want negative z", n)
	}
	if want := (color.RGBA{255, 128, 0, 255}); tri.Reflectance != want {
		t.Errorf("reflectance = %v, want %v", tri.Reflectance, want)
	}
}

func TestLoadGLBNoMaterial(t *testing.T) {
	path := writeTestGLB(t,
		[][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		[]uint16{0, 1, 2},
		nil,
	)
	s, err := LoadGLB(path)
	if err != nil {
		t.Fatalf("LoadGLB: %v", err)
	}
	if s.Len() != 1 || s.Triangles[0].Reflectance != DefaultReflectance {
		t.Errorf("triangles = %+v", s.Triangles)
	}
}

func TestLoadGLBBadIndex(t *testing.T) {
	path := writeTestGLB(t,
		[][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		[]uint16{0, 1, 9},
		nil,
	)
	if _, err := LoadGLB(path); err == nil {
		t.Error("expected error for out-of-range index")
	}
}

func TestLoadGLBNonFinitePosition(t *testing.T) {
	nan := float32(math.NaN())
	path := writeTestGLB(t,
		[][3]float32{{0, 0, 0}, {nan, 0, 0}, {0, 1, 0}},
		[]uint16{0, 1, 2},
		nil,
	)
	if _, err := LoadGLB(path); err == nil {
		t.Error("expected error for NaN position")
	}
}

func TestReadAccessorDataBadReferences(t *testing.T) {
	index := func(i int) *int { return &i }
	doc := &gltf.Document{
		Buffers:     []*gltf.Buffer{{ByteLength: 12, Data: make([]byte, 12)}},
		BufferViews: []*gltf.BufferView{{Buffer: 3, ByteLength: 12}},
	}

	tests := []struct {
		name     string
		accessor *gltf.Accessor
	}{
		{"no buffer view", &gltf.Accessor{ComponentType: gltf.ComponentFloat, Count: 1, Type: gltf.AccessorVec3}},
		{"buffer view out of range", &gltf.Accessor{BufferView: index(5), ComponentType: gltf.ComponentFloat, Count: 1, Type: gltf.AccessorVec3}},
		{"negative buffer view", &gltf.Accessor{BufferView: index(-1), ComponentType: gltf.ComponentFloat, Count: 1, Type: gltf.AccessorVec3}},
		{"buffer out of range", &gltf.Accessor{BufferView: index(0), ComponentType: gltf.ComponentFloat, Count: 1, Type: gltf.AccessorVec3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := readAccessorData(doc, tc.accessor); err == nil {
				t.Error("expected error")
			}
		})
	}
}
