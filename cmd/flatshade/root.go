package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taigrr/flatshade/pkg/models"
	"github.com/taigrr/flatshade/pkg/render"
	"github.com/taigrr/flatshade/pkg/scene"
	"github.com/taigrr/flatshade/pkg/viewer"
)

// globalFlags holds the flags shared by every subcommand.
type globalFlags struct {
	width      int
	height     int
	bg         string
	ambient    string
	lightColor string
	workers    int
	verbose    bool
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}
	defaults := render.DefaultOptions()

	root := &cobra.Command{
		Use:   "flatshade",
		Short: "Flat-shaded triangle rasterizer",
		Long: "flatshade rasterizes flat-colored triangles lit by one directional light\n" +
			"using an orthographic view, backface culling and a z-buffer.\n\n" +
			"Models: .txt/.scene text scenes, .glb/.gltf files, or prim:<name> with\n" +
			"name one of " + strings.Join(models.PrimitiveNames(), ", ") + ".\n\n" +
			"Controls (view and window):\n" + viewer.ControlsHelp(),
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.IntVar(&gf.width, "width", defaults.Width, "Viewport width in pixels (render and window)")
	pf.IntVar(&gf.height, "height", defaults.Height, "Viewport height in pixels (render and window)")
	pf.StringVar(&gf.bg, "bg", "255,255,255", "Background color (R,G,B or #rrggbb)")
	pf.StringVar(&gf.ambient, "ambient", "80,80,80", "Ambient light (R,G,B or #rrggbb)")
	pf.StringVar(&gf.lightColor, "light-color", "200,200,200", "Directional light color (R,G,B or #rrggbb)")
	pf.IntVar(&gf.workers, "workers", runtime.GOMAXPROCS(0), "Goroutines preparing triangles (1 = serial)")
	pf.BoolVarP(&gf.verbose, "verbose", "v", false, "Log load and frame statistics to stderr")

	root.AddCommand(
		newRenderCmd(gf),
		newViewCmd(gf),
		newWindowCmd(gf),
	)
	return root
}

// options builds render options from the flags.
func (gf *globalFlags) options() (render.Options, error) {
	opts := render.DefaultOptions()
	opts.Width = gf.width
	opts.Height = gf.height
	opts.Workers = gf.workers

	colors := []struct {
		flag string
		val  string
		dst  *render.Color
	}{
		{"bg", gf.bg, &opts.Background},
		{"ambient", gf.ambient, &opts.Ambient},
		{"light-color", gf.lightColor, &opts.LightColor},
	}
	for _, c := range colors {
		v, err := render.ParseColor(c.val)
		if err != nil {
			return opts, fmt.Errorf("--%s: %w", c.flag, err)
		}
		*c.dst = v
	}
	return opts, opts.Validate()
}

// logger returns a text logger on w; quiet unless --verbose.
func (gf *globalFlags) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if gf.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadScene loads a model and reports what was read.
func loadScene(path string, log *slog.Logger) (*scene.Scene, error) {
	s, err := models.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	b := s.Bounds()
	log.Debug("loaded model",
		"path", path,
		"triangles", s.Len(),
		"vertices", s.VertexCount(),
		"width", b.Width(),
		"height", b.Height(),
	)
	return s, nil
}

// modelName is the display name of a model path.
func modelName(path string) string {
	if strings.HasPrefix(path, models.PrimitivePrefix) {
		return path
	}
	return filepath.Base(path)
}
