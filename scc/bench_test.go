package scc_test

import (
	"testing"

	"github.com/katalvlaran/dualgraph/builder"
	"github.com/katalvlaran/dualgraph/csr"
	"github.com/katalvlaran/dualgraph/scc"
)

// BenchmarkTarjan_Rings runs Tarjan over 100 disjoint 100-node cycles.
func BenchmarkTarjan_Rings(b *testing.B) {
	cons := make([]builder.Constructor, 100)
	for i := range cons {
		cons[i] = builder.Cycle(100)
	}
	g, err := builder.Build(nil, cons...)
	if err != nil {
		b.Fatal(err)
	}
	f := csr.Freeze(g)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = scc.Tarjan(f)
	}
}
