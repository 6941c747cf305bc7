// Package viewer holds the interactive state shared by the flatshade hosts:
// the loaded scene, its current orientation, the ambient light and the
// render mode. Hosts translate their input into Commands and ask for a
// Frame whenever they redraw.
//
// A Viewer is not safe for concurrent use; hosts feed it from one
// goroutine.
package viewer

import (
	"context"

	"github.com/taigrr/flatshade/pkg/render"
	"github.com/taigrr/flatshade/pkg/scene"
)

// RotationStep is the angle in radians of one rotate command.
const RotationStep = 0.2

// DefaultFPS is the frame rate the ambient spring is tuned for.
const DefaultFPS = 60

// Command is one user action.
type Command int

const (
	CmdNone Command = iota
	CmdRotateLeft
	CmdRotateRight
	CmdRotateUp
	CmdRotateDown
	CmdReset
	CmdAmbientUp
	CmdAmbientDown
	CmdToggleWireframe
	CmdQuit
)

var commandNames = map[Command]string{
	CmdNone:            "none",
	CmdRotateLeft:      "rotate-left",
	CmdRotateRight:     "rotate-right",
	CmdRotateUp:        "rotate-up",
	CmdRotateDown:      "rotate-down",
	CmdReset:           "reset",
	CmdAmbientUp:       "ambient-up",
	CmdAmbientDown:     "ambient-down",
	CmdToggleWireframe: "toggle-wireframe",
	CmdQuit:            "quit",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// Viewer owns the scene being viewed and everything needed to draw it.
type Viewer struct {
	loaded    *scene.Scene // As loaded, before any fitting
	scene     *scene.Scene // Current orientation, fitted to the viewport
	renderer  *render.Renderer
	ambient   *Ambient
	wireframe bool

	// WireColor is the outline color used in wireframe mode.
	WireColor render.Color
}

// New creates a viewer for s, fitted to the viewport in opts.
func New(s *scene.Scene, opts render.Options, fps int) *Viewer {
	if fps <= 0 {
		fps = DefaultFPS
	}
	v := &Viewer{
		loaded:    s,
		renderer:  render.NewRenderer(opts),
		ambient:   NewAmbient(opts.Ambient, fps),
		WireColor: render.ColorGreen,
	}
	v.scene = scene.Normalize(s, opts.Width, opts.Height)
	return v
}

// Scene returns the scene in its current orientation.
func (v *Viewer) Scene() *scene.Scene {
	return v.scene
}

// Size returns the viewport size.
func (v *Viewer) Size() (width, height int) {
	opts := v.renderer.Options()
	return opts.Width, opts.Height
}

// Ambient returns the ambient control.
func (v *Viewer) Ambient() *Ambient {
	return v.ambient
}

// Wireframe reports whether outlines are drawn over the shaded frame.
func (v *Viewer) Wireframe() bool {
	return v.wireframe
}

// Stats returns the counts from the most recent frame.
func (v *Viewer) Stats() render.FrameStats {
	return v.renderer.Stats
}

// Apply runs one command. It returns false for CmdQuit.
func (v *Viewer) Apply(cmd Command) bool {
	switch cmd {
	case CmdRotateLeft:
		v.RotateLeft()
	case CmdRotateRight:
		v.RotateRight()
	case CmdRotateUp:
		v.RotateUp()
	case CmdRotateDown:
		v.RotateDown()
	case CmdReset:
		v.Reset()
	case CmdAmbientUp:
		v.AmbientUp()
	case CmdAmbientDown:
		v.AmbientDown()
	case CmdToggleWireframe:
		v.ToggleWireframe()
	case CmdQuit:
		return false
	}
	return true
}

// rotate turns the scene about the origin and moves it back to the middle
// of the viewport. The scale is kept.
func (v *Viewer) rotate(xRot, yRot float64) {
	w, h := v.Size()
	v.scene = scene.Center(v.scene.Rotate(xRot, yRot), w, h)
}

// RotateLeft turns the model about the Y axis.
func (v *Viewer) RotateLeft() { v.rotate(0, RotationStep) }

// RotateRight turns the model about the Y axis the other way.
func (v *Viewer) RotateRight() { v.rotate(0, -RotationStep) }

// RotateUp tips the model about the X axis.
func (v *Viewer) RotateUp() { v.rotate(-RotationStep, 0) }

// RotateDown tips the model about the X axis the other way.
func (v *Viewer) RotateDown() { v.rotate(RotationStep, 0) }

// Reset restores the loaded orientation.
func (v *Viewer) Reset() {
	w, h := v.Size()
	v.scene = scene.Normalize(v.loaded, w, h)
}

// AmbientUp brightens the ambient target by AmbientStep.
func (v *Viewer) AmbientUp() { v.ambient.Adjust(AmbientStep) }

// AmbientDown darkens the ambient target by AmbientStep.
func (v *Viewer) AmbientDown() { v.ambient.Adjust(-AmbientStep) }

// ToggleWireframe switches the outline overlay on or off.
func (v *Viewer) ToggleWireframe() {
	v.wireframe = !v.wireframe
}

// Tick advances time-based state by one frame.
func (v *Viewer) Tick() {
	v.ambient.Update()
}

// Resize changes the viewport and refits the current scene to it.
func (v *Viewer) Resize(width, height int) {
	v.renderer.Resize(width, height)
	v.scene = scene.Normalize(v.scene, width, height)
}

// Frame renders the current state.
func (v *Viewer) Frame(ctx context.Context) (*render.Framebuffer, error) {
	v.renderer.SetAmbient(v.ambient.Color())
	fb, err := v.renderer.Render(ctx, v.scene)
	if err != nil {
		return nil, err
	}
	if v.wireframe {
		render.DrawOutlines(fb, v.scene, v.WireColor)
	}
	return fb, nil
}
