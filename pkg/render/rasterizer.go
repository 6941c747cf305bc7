package render

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/taigrr/flatshade/pkg/math3d"
	"github.com/taigrr/flatshade/pkg/scene"
)

// Options configures a Renderer.
type Options struct {
	Width      int   // Viewport width in pixels
	Height     int   // Viewport height in pixels
	Background Color // Clear color
	LightColor Color // Color of the directional light
	Ambient    Color // Ambient term added to every lit face
	Workers    int   // Prepare-stage goroutines; <= 1 runs serially
}

// DefaultOptions returns the settings used by the command-line tools.
func DefaultOptions() Options {
	return Options{
		Width:      600,
		Height:     600,
		Background: ColorWhite,
		LightColor: Gray(200),
		Ambient:    Gray(80),
		Workers:    runtime.GOMAXPROCS(0),
	}
}

// Validate reports whether the options describe a drawable viewport.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("invalid viewport %dx%d: width and height must be positive", o.Width, o.Height)
	}
	return nil
}

// Renderer turns a Scene into a Framebuffer.
// It holds configuration only; every frame gets fresh buffers.
type Renderer struct {
	opts  Options
	Stats FrameStats // Counts from the most recent Render
}

// FrameStats tracks how many triangles a frame culled and drew.
type FrameStats struct {
	Triangles int // Triangles in the scene
	Culled    int // Triangles rejected as backfacing
	Drawn     int // Triangles composited
}

// prepared is one triangle's cull, shade and scan-conversion result.
type prepared struct {
	hidden bool
	color  Color
	edges  *EdgeList
}

// NewRenderer creates a renderer with the given options.
func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Options returns the renderer's current options.
func (r *Renderer) Options() Options {
	return r.opts
}

// Resize changes the viewport size used by subsequent frames.
func (r *Renderer) Resize(width, height int) {
	r.opts.Width = width
	r.opts.Height = height
}

// SetAmbient changes the ambient term used by subsequent frames.
func (r *Renderer) SetAmbient(c Color) {
	r.opts.Ambient = c
}

// Render draws the scene into a new framebuffer.
//
// Triangles are culled, shaded and scan-converted in parallel, then
// composited one at a time in scene order, so the result is the same for
// any worker count.
func (r *Renderer) Render(ctx context.Context, s *scene.Scene) (*Framebuffer, error) {
	if err := r.opts.Validate(); err != nil {
		return nil, err
	}

	prep, err := r.prepare(ctx, s)
	if err != nil {
		return nil, err
	}

	fb := NewFramebuffer(r.opts.Width, r.opts.Height, r.opts.Background)
	r.Stats = FrameStats{Triangles: len(prep)}
	for _, p := range prep {
		if p.hidden {
			r.Stats.Culled++
			continue
		}
		Composite(fb, p.edges, p.color)
		r.Stats.Drawn++
	}
	return fb, nil
}

// prepare runs the per-triangle stages on a bounded worker pool. Each
// worker owns a contiguous chunk of the output slice.
func (r *Renderer) prepare(ctx context.Context, s *scene.Scene) ([]prepared, error) {
	tris := s.Triangles
	out := make([]prepared, len(tris))

	workers := r.opts.Workers
	if workers <= 1 || len(tris) < 2 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for i, t := range tris {
			out[i] = r.prepareTriangle(t, s.Light)
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	chunk := (len(tris) + workers - 1) / workers
	for lo := 0; lo < len(tris); lo += chunk {
		hi := min(lo+chunk, len(tris))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				out[i] = r.prepareTriangle(tris[i], s.Light)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// errgroup cancels gctx on return; only the caller's ctx matters here.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Renderer) prepareTriangle(t scene.Triangle, light math3d.Vec3) prepared {
	if IsHidden(t) {
		return prepared{hidden: true}
	}
	return prepared{
		color: Shade(t, light, r.opts.LightColor, r.opts.Ambient),
		edges: BuildEdgeList(t),
	}
}
