package viewer

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/flatshade/pkg/render"
)

// AmbientStep is how far one AmbientUp or AmbientDown moves each channel.
const AmbientStep = 16

// Ambient eases the ambient light toward a target level with a critically
// damped spring, one spring state per channel.
type Ambient struct {
	spring harmonica.Spring
	target [3]float64
	pos    [3]float64
	vel    [3]float64
}

// NewAmbient creates an ambient control resting at c, stepped fps times a
// second.
func NewAmbient(c render.Color, fps int) *Ambient {
	a := &Ambient{
		// Frequency 6.0 settles in well under a second, damping 1.0 = critically damped (no overshoot)
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
	}
	a.Set(c)
	return a
}

// Set jumps straight to c with no easing.
func (a *Ambient) Set(c render.Color) {
	a.target = [3]float64{float64(c.R), float64(c.G), float64(c.B)}
	a.pos = a.target
	a.vel = [3]float64{}
}

// Adjust moves the target by delta per channel, clamped to [0,255].
func (a *Ambient) Adjust(delta float64) {
	for i := range a.target {
		a.target[i] = math.Max(0, math.Min(255, a.target[i]+delta))
	}
}

// Update advances the spring by one frame.
func (a *Ambient) Update() {
	for i := range a.pos {
		a.pos[i], a.vel[i] = a.spring.Update(a.pos[i], a.vel[i], a.target[i])
	}
}

// Settled reports whether every channel has reached its target.
func (a *Ambient) Settled() bool {
	return a.Color() == a.Target()
}

// Color returns the current, possibly easing, ambient level.
func (a *Ambient) Color() render.Color {
	return toColor(a.pos)
}

// Target returns the level the ambient is easing toward.
func (a *Ambient) Target() render.Color {
	return toColor(a.target)
}

func toColor(v [3]float64) render.Color {
	ch := func(x float64) uint8 {
		return uint8(math.Max(0, math.Min(255, math.Round(x))))
	}
	return render.RGB(ch(v[0]), ch(v[1]), ch(v[2]))
}
