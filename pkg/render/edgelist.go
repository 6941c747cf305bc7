package render

import (
	"math"

	"github.com/taigrr/flatshade/pkg/scene"
)

// Row is the horizontal span of a triangle on one scanline.
// A row that no edge sampled keeps the sentinel bounds and Set == false.
type Row struct {
	LeftX, LeftZ   float64
	RightX, RightZ float64
	Set            bool
}

func emptyRow() Row {
	return Row{
		LeftX:  math.Inf(1),
		LeftZ:  math.Inf(1),
		RightX: math.Inf(-1),
		RightZ: math.Inf(1),
	}
}

// EdgeList holds one Row per scanline in [StartY, EndY).
type EdgeList struct {
	StartY int
	EndY   int
	rows   []Row
}

// NewEdgeList creates an edge list covering [startY, endY) with every row
// unset. An inverted range yields an empty list.
func NewEdgeList(startY, endY int) *EdgeList {
	if endY < startY {
		endY = startY
	}
	rows := make([]Row, endY-startY)
	for i := range rows {
		rows[i] = emptyRow()
	}
	return &EdgeList{StartY: startY, EndY: endY, rows: rows}
}

// Len returns the number of rows.
func (e *EdgeList) Len() int {
	return len(e.rows)
}

// Row returns row i, counted from StartY.
func (e *EdgeList) Row(i int) Row {
	return e.rows[i]
}

// AddRow records an edge sample at x with depth z on row i.
// Samples outside the list and non-finite samples are ignored.
func (e *EdgeList) AddRow(i int, x, z float64) {
	if i < 0 || i >= len(e.rows) {
		return
	}
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(z) || math.IsInf(z, 0) {
		return
	}
	r := &e.rows[i]
	// Both checks run: the first sample on a row sets both ends.
	if x >= r.RightX {
		r.RightX = x
		r.RightZ = z
	}
	if x <= r.LeftX {
		r.LeftX = x
		r.LeftZ = z
	}
	r.Set = true
}

// BuildEdgeList scan-converts the three edges of a triangle into per-row
// spans. Rows run from floor(min y) to ceil(max y); horizontal edges are
// skipped since their endpoints are sampled by the adjacent edges. A
// triangle with a non-finite vertex yields an empty list.
func BuildEdgeList(t scene.Triangle) *EdgeList {
	if !t.IsFinite() {
		return NewEdgeList(0, 0)
	}
	minY := math.Min(t.V[0].Y, math.Min(t.V[1].Y, t.V[2].Y))
	maxY := math.Max(t.V[0].Y, math.Max(t.V[1].Y, t.V[2].Y))
	e := NewEdgeList(int(math.Floor(minY)), int(math.Ceil(maxY)))

	for i := range 3 {
		up, down := t.V[i], t.V[(i+1)%3]
		if up.Y > down.Y {
			up, down = down, up
		}
		if up.Y == down.Y {
			continue
		}

		dy := down.Y - up.Y
		slopeX := (down.X - up.X) / dy
		slopeZ := (down.Z - up.Z) / dy

		x, z := up.X, up.Z
		end := int(math.Floor(down.Y))
		for y := int(math.Floor(up.Y)); y < end; y++ {
			e.AddRow(y-e.StartY, x, z)
			x += slopeX
			z += slopeZ
		}
	}
	return e
}
