package models

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/taigrr/flatshade/pkg/scene"
)

// ErrUnsupportedFormat is returned for files and primitive names that no
// loader understands.
var ErrUnsupportedFormat = errors.New("unsupported model format")

// PrimitivePrefix selects a procedural primitive instead of a file:
// "prim:sphere".
const PrimitivePrefix = "prim:"

// Load reads a scene from path, picking the loader from the extension:
// .txt and .scene for the text format, .glb and .gltf for glTF. A path of
// the form "prim:<name>" builds a procedural primitive.
func Load(path string) (*scene.Scene, error) {
	if name, ok := strings.CutPrefix(path, PrimitivePrefix); ok {
		return Primitive(name, DefaultPrimitiveCells)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt", ".scene":
		return LoadText(path)
	case ".glb", ".gltf":
		return LoadGLB(path)
	default:
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnsupportedFormat, ext)
	}
}
