// flatshade - flat-shaded triangle rasterizer
// Render text scenes, glTF models and SDF primitives to PNG/BMP, or view
// them interactively in the terminal or a desktop window.
//
// Controls (view and window):
//
//	Arrows/WASD - Rotate the model
//	+/-         - Brighten/dim the ambient light
//	X           - Toggle wireframe overlay
//	R           - Reset view
//	Esc/Q       - Quit
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fang.Execute(ctx, newRootCmd()); err != nil {
		stop()
		os.Exit(1)
	}
}
