// Package render implements the flatshade rasterization pipeline: backface
// culling, flat Lambertian shading, edge-list scan conversion and z-buffered
// compositing into a Framebuffer.
package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// Framebuffer holds one frame's color and depth buffers.
// Both are sized to the viewport and addressed by (x, y); a new Framebuffer
// is allocated for every frame.
type Framebuffer struct {
	Width  int       // Width in pixels
	Height int       // Height in pixels
	Pixels []Color   // Row-major color buffer
	Depth  []float64 // Row-major depth buffer, smaller is nearer
}

// NewFramebuffer creates a framebuffer cleared to bg with every depth at
// the maximum representable value.
func NewFramebuffer(width, height int, bg Color) *Framebuffer {
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
		Depth:  make([]float64, width*height),
	}
	fb.Clear(bg)
	fb.ClearDepth()
	return fb
}

// Clear fills the color buffer with a solid color.
func (fb *Framebuffer) Clear(c Color) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// ClearDepth resets every depth to math.MaxFloat64.
func (fb *Framebuffer) ClearDepth() {
	// Use copy-doubling for faster clearing
	n := len(fb.Depth)
	if n == 0 {
		return
	}
	fb.Depth[0] = math.MaxFloat64
	for i := 1; i < n; i *= 2 {
		copy(fb.Depth[i:], fb.Depth[:i])
	}
}

// InBounds reports whether (x, y) addresses a pixel.
func (fb *Framebuffer) InBounds(x, y int) bool {
	return x >= 0 && x < fb.Width && y >= 0 && y < fb.Height
}

// SetPixel sets a pixel at (x, y) to the given color without a depth test.
// Bounds checking is performed.
func (fb *Framebuffer) SetPixel(x, y int, c Color) {
	if !fb.InBounds(x, y) {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) Color {
	if !fb.InBounds(x, y) {
		return Color{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// DepthAt returns the stored depth at (x, y), or math.MaxFloat64 outside the
// buffer.
func (fb *Framebuffer) DepthAt(x, y int) float64 {
	if !fb.InBounds(x, y) {
		return math.MaxFloat64
	}
	return fb.Depth[y*fb.Width+x]
}

// plot writes c and z at (x, y) if z is strictly nearer than the stored
// depth. The caller guarantees (x, y) is in bounds.
func (fb *Framebuffer) plot(x, y int, z float64, c Color) {
	idx := y*fb.Width + x
	if z < fb.Depth[idx] {
		fb.Depth[idx] = z
		fb.Pixels[idx] = c
	}
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
// The line is clipped to the framebuffer first, so the work done is bounded
// by the framebuffer size. Lines ignore the depth buffer.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c Color) {
	fx0, fy0, fx1, fy1, ok := clipSegment(
		float64(x0), float64(y0), float64(x1), float64(y1),
		0, 0, float64(fb.Width-1), float64(fb.Height-1),
	)
	if !ok {
		return
	}
	x0, y0 = int(math.Round(fx0)), int(math.Round(fy0))
	x1, y1 = int(math.Round(fx1)), int(math.Round(fy1))

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// clipSegment clips a segment to the rectangle [minX,maxX] x [minY,maxY]
// (Liang-Barsky). It reports false when no part of the segment is inside,
// the rectangle is empty, or an input is NaN.
func clipSegment(x0, y0, x1, y1, minX, minY, maxX, maxY float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	if maxX < minX || maxY < minY {
		return 0, 0, 0, 0, false
	}
	for _, v := range [4]float64{x0, y0, x1, y1} {
		if math.IsNaN(v) {
			return 0, 0, 0, 0, false
		}
	}

	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	e0, e1 := -1, -1 // Boundary that moved each end, -1 for none
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - minX, maxX - x0, y0 - minY, maxY - y0}
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0, e0 = r, i
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1, e1 = r, i
			}
		}
	}

	// A clipped end lies exactly on its boundary. Setting that coordinate
	// directly avoids the rounding error of t*d on very long segments.
	at := func(t float64, edge int, x, y float64) (float64, float64) {
		if edge < 0 {
			return x, y
		}
		x, y = x0+t*dx, y0+t*dy
		switch edge {
		case 0:
			x = minX
		case 1:
			x = maxX
		case 2:
			y = minY
		case 3:
			y = maxY
		}
		return min(max(x, minX), maxX), min(max(y, minY), maxY)
	}
	cx0, cy0 = at(t0, e0, x0, y0)
	cx1, cy1 = at(t1, e1, x1, y1)
	return cx0, cy0, cx1, cy1, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// Encoder writes an image in one file format.
type Encoder func(w io.Writer, img image.Image) error

// encoders maps a lower-case file extension to its image encoder.
var encoders = map[string]Encoder{
	".png": png.Encode,
	".bmp": bmp.Encode,
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	return fb.saveWith(path, png.Encode)
}

// SaveBMP saves the framebuffer as a BMP file.
func (fb *Framebuffer) SaveBMP(path string) error {
	return fb.saveWith(path, bmp.Encode)
}

// Save writes the framebuffer in the format named by the path's extension
// (.png or .bmp).
func (fb *Framebuffer) Save(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	enc, ok := encoders[ext]
	if !ok {
		return fmt.Errorf("unsupported image format: %q (use .png or .bmp)", ext)
	}
	return fb.saveWith(path, enc)
}

func (fb *Framebuffer) saveWith(path string, enc Encoder) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := enc(f, fb.ToImage()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
