package render

import (
	"context"
	"testing"
)

func BenchmarkBuildEdgeList(b *testing.B) {
	tri := testTriangle(0, 255)
	for b.Loop() {
		BuildEdgeList(tri)
	}
}

func BenchmarkRenderSerial(b *testing.B) {
	benchmarkRender(b, 1)
}

func BenchmarkRenderParallel(b *testing.B) {
	benchmarkRender(b, 8)
}

func benchmarkRender(b *testing.B, workers int) {
	s := randomScene(2000, 600)
	opts := DefaultOptions()
	opts.Workers = workers
	r := NewRenderer(opts)
	ctx := context.Background()
	for b.Loop() {
		if _, err := r.Render(ctx, s); err != nil {
			b.Fatal(err)
		}
	}
}
