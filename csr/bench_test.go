package csr_test

import (
	"testing"

	"github.com/katalvlaran/dualgraph/builder"
	"github.com/katalvlaran/dualgraph/csr"
)

// ring builds an n-node ring plus n random chords.
func ring(b *testing.B, n int) *builder.Graph {
	g, err := builder.Build(
		[]builder.Option{builder.WithSeed(7), builder.WithUniformWeight(1, 2)},
		builder.Cycle(n),
	)
	if err != nil {
		b.Fatal(err)
	}
	chords, err := builder.Build([]builder.Option{builder.WithSeed(8)}, builder.RandomEdges(n, n))
	if err != nil {
		b.Fatal(err)
	}
	for _, e := range chords.Edges() {
		_ = g.AddEdge(e.From, e.To, 2)
	}

	return g
}

func BenchmarkFreeze_10k(b *testing.B) {
	g := ring(b, 10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = csr.Freeze(g)
	}
}

func BenchmarkThaw_10k(b *testing.B) {
	f := csr.Freeze(ring(b, 10_000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = csr.Thaw(f)
	}
}

func BenchmarkOut_Scan(b *testing.B) {
	f := csr.Freeze(ring(b, 10_000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for u := 0; u < f.SlotCount(); u++ {
			ts, _ := f.Out(u)
			sum += len(ts)
		}
		_ = sum
	}
}
