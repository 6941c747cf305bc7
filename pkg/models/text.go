package models

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/taigrr/flatshade/pkg/math3d"
	"github.com/taigrr/flatshade/pkg/scene"
)

// triangleFields is the number of fields on a triangle line:
// x0 x1 x2 y0 y1 y2 z0 z1 z2 r g b.
const triangleFields = 12

// ParseError reports a malformed line in a text scene.
type ParseError struct {
	Line int // 1-based line number
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadText reads a text scene from path.
func LoadText(path string) (*scene.Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	s, err := ParseText(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}

// ParseText reads a text scene.
//
// The first non-blank line is the light direction "x y z". Every following
// non-blank line is one triangle written as its three x coordinates, three
// y coordinates, three z coordinates and an integer r g b reflectance in
// [0,255]. Fields are separated by any run of whitespace.
func ParseText(r io.Reader) (*scene.Scene, error) {
	sc := bufio.NewScanner(r)
	var (
		lineNo   int
		light    math3d.Vec3
		hasLight bool
		tris     []scene.Triangle
	)

	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		if !hasLight {
			v, err := parseLight(fields)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Err: err}
			}
			light, hasLight = v, true
			continue
		}

		t, err := parseTriangle(fields)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Err: err}
		}
		tris = append(tris, t)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	if !hasLight {
		return nil, &ParseError{Line: lineNo, Err: fmt.Errorf("missing light direction")}
	}

	return &scene.Scene{Triangles: tris, Light: light}, nil
}

func parseLight(fields []string) (math3d.Vec3, error) {
	if len(fields) != 3 {
		return math3d.Vec3{}, fmt.Errorf("light: want 3 fields, got %d", len(fields))
	}
	var xyz [3]float64
	for i, f := range fields {
		v, err := parseFloat(f)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("light: %w", err)
		}
		xyz[i] = v
	}
	return math3d.V3(xyz[0], xyz[1], xyz[2]), nil
}

func parseTriangle(fields []string) (scene.Triangle, error) {
	var t scene.Triangle
	if len(fields) != triangleFields {
		return t, fmt.Errorf("triangle: want %d fields, got %d", triangleFields, len(fields))
	}

	var coords [9]float64
	for i := range coords {
		v, err := parseFloat(fields[i])
		if err != nil {
			return t, fmt.Errorf("triangle: %w", err)
		}
		coords[i] = v
	}
	for i := range 3 {
		t.V[i] = math3d.V3(coords[i], coords[3+i], coords[6+i])
	}

	var rgb [3]uint8
	for i := range rgb {
		v, err := strconv.ParseUint(fields[9+i], 10, 8)
		if err != nil {
			return t, fmt.Errorf("triangle: reflectance %q: want an integer in [0,255]", fields[9+i])
		}
		rgb[i] = uint8(v)
	}
	t.Reflectance.R, t.Reflectance.G, t.Reflectance.B, t.Reflectance.A = rgb[0], rgb[1], rgb[2], 255
	return t, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite number %q", s)
	}
	return v, nil
}

// WriteText writes s in the format read by ParseText.
func WriteText(w io.Writer, s *scene.Scene) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, s.Light)
	for _, t := range s.Triangles {
		fmt.Fprintf(bw, "%g %g %g %g %g %g %g %g %g %d %d %d\n",
			t.V[0].X, t.V[1].X, t.V[2].X,
			t.V[0].Y, t.V[1].Y, t.V[2].Y,
			t.V[0].Z, t.V[1].Z, t.V[2].Z,
			t.Reflectance.R, t.Reflectance.G, t.Reflectance.B,
		)
	}
	return bw.Flush()
}

// SaveText writes s to path in the text scene format.
func SaveText(path string, s *scene.Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create scene: %w", err)
	}
	if err := WriteText(f, s); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
