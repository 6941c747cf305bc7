package render

import (
	"math"

	"github.com/taigrr/flatshade/pkg/math3d"
	"github.com/taigrr/flatshade/pkg/scene"
)

// Shade computes the flat color of a triangle under one directional light
// plus an ambient term.
//
// Each channel is (ambient + lightColor*cos) * reflectance/255, where cos is
// the cosine between the face normal and the light direction. The diffuse
// term only contributes when cos > 0. A zero-length normal or light
// direction leaves the ambient term alone. Results are clamped to [0,255].
func Shade(t scene.Triangle, light math3d.Vec3, lightColor, ambient Color) Color {
	cos := t.Normal().CosTheta(light)
	lit := !math.IsNaN(cos) && cos > 0

	channel := func(amb, lc, refl uint8) uint8 {
		v := float64(amb)
		if lit {
			v += float64(lc) * cos
		}
		return clampChannel(v * float64(refl) / 255)
	}

	r := t.Reflectance
	return RGB(
		channel(ambient.R, lightColor.R, r.R),
		channel(ambient.G, lightColor.G, r.G),
		channel(ambient.B, lightColor.B, r.B),
	)
}

// clampChannel truncates v into a color channel, saturating at 0 and 255.
func clampChannel(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
