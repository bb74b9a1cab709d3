package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/dualgraph/builder"
	"github.com/katalvlaran/dualgraph/csr"
	"github.com/katalvlaran/dualgraph/dijkstra"
)

// BenchmarkDijkstra_Random10k runs single-source Dijkstra on 10k nodes with 50k edges.
func BenchmarkDijkstra_Random10k(b *testing.B) {
	g, err := builder.Build(
		[]builder.Option{builder.WithSeed(1), builder.WithUniformWeight(1, 100)},
		builder.RandomEdges(10_000, 50_000),
	)
	if err != nil {
		b.Fatal(err)
	}
	f := csr.Freeze(g)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(f, 0)
	}
}

// BenchmarkShortestPath_Grid stops early at the far corner of a 100×100 grid.
func BenchmarkShortestPath_Grid(b *testing.B) {
	const side = 100
	g, err := builder.Build([]builder.Option{builder.WithSeed(2), builder.WithUniformWeight(1, 9)}, builder.Grid(side, side))
	if err != nil {
		b.Fatal(err)
	}
	f := csr.Freeze(g)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _, _ = dijkstra.ShortestPath(f, 0, side*side-1)
	}
}
