// Package window shows a viewer in a desktop window.
//
// Building with the nowindow tag drops the ebiten dependency; Run then
// reports ErrUnavailable.
package window

import "errors"

// ErrUnavailable is returned by Run in builds without window support.
var ErrUnavailable = errors.New("window support not built in (built with -tags nowindow)")

// Config configures the window.
type Config struct {
	Title string
	Scale int // Window pixels per framebuffer pixel
	FPS   int
}
