package models

import (
	"errors"
	"slices"
	"testing"
)

func TestPrimitiveNames(t *testing.T) {
	want := []string{"box", "cylinder", "sphere"}
	if got := PrimitiveNames(); !slices.Equal(got, want) {
		t.Errorf("PrimitiveNames = %v, want %v", got, want)
	}
}

func TestPrimitive(t *testing.T) {
	for _, name := range PrimitiveNames() {
		t.Run(name, func(t *testing.T) {
			s, err := Primitive(name, 8)
			if err != nil {
				t.Fatalf("Primitive: %v", err)
			}
			if s.Len() == 0 {
				t.Fatal("no triangles")
			}
			if s.Light != DefaultLight {
				t.Errorf("light = %v", s.Light)
			}

			// A closed surface shows some faces and hides others.
			var front, back int
			for _, tri := range s.Triangles {
				if tri.Reflectance != DefaultReflectance {
					t.Fatalf("reflectance = %v", tri.Reflectance)
				}
				switch z := tri.Normal().Z; {
				case z < 0:
					front++
				case z > 0:
					back++
				}
			}
			if front == 0 || back == 0 {
				t.Errorf("front = %d, back = %d", front, back)
			}
		})
	}
}

func TestPrimitiveUnknown(t *testing.T) {
	_, err := Primitive("teapot", 8)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}
