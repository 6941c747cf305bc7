package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/taigrr/flatshade/pkg/render"
	"github.com/taigrr/flatshade/pkg/scene"
)

func newRenderCmd(gf *globalFlags) *cobra.Command {
	var (
		output    string
		rotateX   float64
		rotateY   float64
		wireframe bool
	)

	cmd := &cobra.Command{
		Use:   "render <model>",
		Short: "Render a model to a PNG or BMP image",
		Args:  cobra.ExactArgs(1),
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

			s = scene.Normalize(s, opts.Width, opts.Height)
			if rotateX != 0 || rotateY != 0 {
				s = scene.Center(s.Rotate(rotateX, rotateY), opts.Width, opts.Height)
			}

			r := render.NewRenderer(opts)
			start := time.Now()
			fb, err := r.Render(cmd.Context(), s)
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}
			if wireframe {
				render.DrawOutlines(fb, s, render.ColorGreen)
			}
			log.Debug("rendered frame",
				"elapsed", time.Since(start),
				"triangles", r.Stats.Triangles,
				"culled", r.Stats.Culled,
				"drawn", r.Stats.Drawn,
				"workers", opts.Workers,
			)

			if output == "" {
				output = defaultOutput(args[0])
			}
			if err := fb.Save(output); err != nil {
				return fmt.Errorf("save image: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%dx%d, %d of %d triangles drawn)\n",
				output, fb.Width, fb.Height, r.Stats.Drawn, r.Stats.Triangles)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "", "Output image (.png or .bmp); defaults to <model>.png")
	f.Float64Var(&rotateX, "rotate-x", 0, "Rotation about X in radians, applied before rotate-y")
	f.Float64Var(&rotateY, "rotate-y", 0, "Rotation about Y in radians")
	f.BoolVar(&wireframe, "wireframe", false, "Overlay outlines of visible triangles")
	return cmd
}

// defaultOutput names the image written for a model when -o is not given:
// the model name with a .png extension, in the current directory.
func defaultOutput(model string) string {
	name := modelName(model)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return strings.ReplaceAll(name, ":", "_") + ".png"
}
