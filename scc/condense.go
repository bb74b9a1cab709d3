package scc

import (
	"github.com/katalvlaran/dualgraph/core"
	"github.com/katalvlaran/dualgraph/csr"
)

// Condense builds the condensation of f from a Tarjan result: one node per
// component (payload = its members, handle = its index in res.Components) and
// one edge per ordered pair of distinct components joined by at least one edge.
// Edge weight is the number of underlying edges between the pair.
//
// The condensation is a DAG. Edges appear in the order their first underlying
// edge is met while scanning f's sources ascending, then CSR order.
func Condense[T any, W any](f *csr.Frozen[T, W], res *Result) *csr.Frozen[[]int, int] {
	d := core.NewDynamic[[]int, int](core.WithNodeCapacity(len(res.Components)))
	for _, members := range res.Components {
		d.AddNode(members)
	}

	type pair struct{ from, to int }
	count := make(map[pair]int)
	var order []pair
	for u, n := 0, f.SlotCount(); u < n; u++ {
		cu := res.Component[u]
		if cu == NoComponent {
			continue
		}
		targets, _ := f.Out(u)
		for _, v := range targets {
			cv := res.Component[v]
			if cv == cu {
				continue
			}
			p := pair{cu, cv}
			if count[p] == 0 {
				order = append(order, p)
			}
			count[p]++
		}
	}

	edges := make([]core.Edge[int], len(order))
	for i, p := range order {
		edges[i] = core.Edge[int]{From: p.from, To: p.to, Weight: count[p]}
	}
	// Every endpoint is a component index added above.
	_ = d.AddEdges(edges...)

	return csr.Freeze(d)
}
