//go:build !nowindow

package window

import (
	"context"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/taigrr/flatshade/pkg/viewer"
)

// keyCodes maps the shared key names to ebiten keys.
var keyCodes = map[string][]ebiten.Key{
	"left":   {ebiten.KeyArrowLeft},
	"right":  {ebiten.KeyArrowRight},
	"up":     {ebiten.KeyArrowUp},
	"down":   {ebiten.KeyArrowDown},
	"a":      {ebiten.KeyA},
	"d":      {ebiten.KeyD},
	"w":      {ebiten.KeyW},
	"s":      {ebiten.KeyS},
	"+":      {ebiten.KeyNumpadAdd},
	"=":      {ebiten.KeyEqual},
	"-":      {ebiten.KeyMinus, ebiten.KeyNumpadSubtract},
	"x":      {ebiten.KeyX},
	"r":      {ebiten.KeyR},
	"q":      {ebiten.KeyQ},
	"escape": {ebiten.KeyEscape},
}

// Run opens a window showing v and blocks until it closes, the user
// quits, or ctx is canceled.
func Run(ctx context.Context, v *viewer.Viewer, cfg Config) error {
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	if cfg.FPS < 1 {
		cfg.FPS = viewer.DefaultFPS
	}

	w, h := v.Size()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w*cfg.Scale, h*cfg.Scale)
	ebiten.SetTPS(cfg.FPS)

	g := &game{ctx: ctx, v: v}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

type game struct {
	ctx   context.Context
	v     *viewer.Viewer
	img   *ebiten.Image
	pix   []byte
	dirty bool
}

// commands returns the commands whose keys were pressed this tick.
func (g *game) commands() []viewer.Command {
	var cmds []viewer.Command
	for _, b := range viewer.Bindings {
	keys:
		for _, name := range b.Keys {
			for _, k := range keyCodes[name] {
				if inpututil.IsKeyJustPressed(k) {
					cmds = append(cmds, b.Cmd)
					break keys
				}
			}
		}
	}
	return cmds
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	for _, cmd := range g.commands() {
		if !g.v.Apply(cmd) {
			return ebiten.Termination
		}
	}
	g.v.Tick()

	fb, err := g.v.Frame(g.ctx)
	if err != nil {
		if g.ctx.Err() != nil {
			return ebiten.Termination
		}
		return fmt.Errorf("render frame: %w", err)
	}
	if g.img == nil || g.img.Bounds().Dx() != fb.Width || g.img.Bounds().Dy() != fb.Height {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(fb.Width, fb.Height)
	}
	g.pix = fb.ToImage().Pix
	g.dirty = true
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		return
	}
	if g.dirty {
		g.img.WritePixels(g.pix)
		g.dirty = false
	}
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.v.Size()
}
