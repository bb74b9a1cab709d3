// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for dualgraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Dynamic.
//   - Keep edge-multiset comparisons order-aware where the package guarantees order.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dualgraph/core"
)

// Common payloads used across core tests.
const (
	PayloadA = "A"
	PayloadB = "B"
	PayloadC = "C"
	PayloadD = "D"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight1 int64 = 1
	Weight2 int64 = 2
	Weight4 int64 = 4
	Weight7 int64 = 7
)

// diamond builds A(0)→B(1), A→C(2), B→C, B→D(3), C→D with the scenario weights.
func diamond(t *testing.T) *core.Dynamic[string, int64] {
	t.Helper()
	g := core.NewDynamic[string, int64]()
	a := g.AddNode(PayloadA)
	b := g.AddNode(PayloadB)
	c := g.AddNode(PayloadC)
	d := g.AddNode(PayloadD)
	require.NoError(t, g.AddEdges(
		core.Edge[int64]{From: a, To: b, Weight: Weight1},
		core.Edge[int64]{From: a, To: c, Weight: Weight4},
		core.Edge[int64]{From: b, To: c, Weight: Weight1},
		core.Edge[int64]{From: b, To: d, Weight: Weight1},
		core.Edge[int64]{From: c, To: d, Weight: Weight1},
	))

	return g
}

// targets returns the target handles of idx's outgoing arcs, in order.
func targets(t *testing.T, g *core.Dynamic[string, int64], idx int) []int {
	t.Helper()
	arcs, err := g.OutArcs(idx)
	require.NoError(t, err)
	out := make([]int, len(arcs))
	for i, a := range arcs {
		out[i] = a.To
	}

	return out
}
