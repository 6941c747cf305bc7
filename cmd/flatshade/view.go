package main

import (
	"context"
	"fmt"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"

	"github.com/taigrr/flatshade/pkg/viewer"
)

func newViewCmd(gf *globalFlags) *cobra.Command {
	var fps int

	cmd := &cobra.Command{
		Use:   "view <model>",
		Short: "View a model in the terminal",
		Long: "View a model in the terminal using half-block cells. The viewport\n" +
			"follows the terminal size; --width and --height are ignored.\n\n" +
			"Controls:\n" + viewer.ControlsHelp(),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := gf.options()
			if err != nil {
				return err
			}
			log := gf.logger(cmd.ErrOrStderr())

			s, err := loadScene(args[0], log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Loaded: %s (%d triangles)\n", modelName(args[0]), s.Len())

			if fps < 1 {
				fps = viewer.DefaultFPS
			}
			return runTerminal(cmd.Context(), func(width, height int) *viewer.Viewer {
				opts.Width, opts.Height = width, height
				return viewer.New(s, opts, fps)
			}, fps)
		},
	}

	cmd.Flags().IntVar(&fps, "fps", viewer.DefaultFPS, "Target FPS")
	return cmd
}

// runTerminal drives a viewer on the terminal until the user quits or ctx
// is canceled. Each terminal row shows two framebuffer rows.
func runTerminal(ctx context.Context, newViewer func(width, height int) *viewer.Viewer, fps int) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	v := newViewer(width, height*2)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Input is read on its own goroutine; the viewer is only touched by
	// the render loop below.
	cmds := make(chan viewer.Command, 16)
	sizes := make(chan uv.WindowSizeEvent, 1)
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				select {
				case <-sizes:
				default:
				}
				sizes <- ev
			case uv.KeyPressEvent:
				for _, b := range viewer.Bindings {
					if !ev.MatchString(b.Keys...) {
						continue
					}
					select {
					case cmds <- b.Cmd:
					case <-ctx.Done():
						return
					}
					break
				}
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case cmd := <-cmds:
			if !v.Apply(cmd) {
				return nil
			}

		case ev := <-sizes:
			width, height = ev.Width, ev.Height
			term.Erase()
			term.Resize(width, height)
			v.Resize(width, height*2)

		case <-ticker.C:
			v.Tick()
			fb, err := v.Frame(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("render frame: %w", err)
			}
			fb.Draw(term, term.Bounds())
			if err := term.Display(); err != nil {
				return fmt.Errorf("display: %w", err)
			}
		}
	}
}
