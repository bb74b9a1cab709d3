// SPDX-License-Identifier: MIT
// Package core_test verifies the Dynamic graph lifecycle: handles, tombstones,
// edge insertion/removal, batch atomicity, cloning and reconstruction.

package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dualgraph/core"
)

// TestAddNode_SequentialHandles checks that handles are dense and insertion-ordered.
func TestAddNode_SequentialHandles(t *testing.T) {
	g := core.NewDynamic[string, int64]()
	for i, p := range []string{PayloadA, PayloadB, PayloadC} {
		assert.Equal(t, i, g.AddNode(p))
	}
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.SlotCount())
	assert.Equal(t, []int{0, 1, 2}, g.Nodes())

	p, err := g.Node(1)
	require.NoError(t, err)
	assert.Equal(t, PayloadB, p)
}

// TestAddEdge_MissingEndpoint ensures the first absent endpoint is reported.
func TestAddEdge_MissingEndpoint(t *testing.T) {
	g := core.NewDynamic[string, int64]()
	a := g.AddNode(PayloadA)

	err := g.AddEdge(a, 5, Weight1)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	var ge *core.GraphError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, 5, ge.Node)

	err = g.AddEdge(-1, a, Weight1)
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, -1, ge.Node)
	assert.Equal(t, 0, g.EdgeCount())
}

// TestAddEdge_LoopsAndParallel keeps self-loops and parallel edges distinct.
func TestAddEdge_LoopsAndParallel(t *testing.T) {
	g := core.NewDynamic[string, int64]()
	a := g.AddNode(PayloadA)
	b := g.AddNode(PayloadB)
	require.NoError(t, g.AddEdge(a, a, Weight1))
	require.NoError(t, g.AddEdge(a, b, Weight1))
	require.NoError(t, g.AddEdge(a, b, Weight2))

	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []int{a, b, b}, targets(t, g, a))
	in, err := g.InDegree(b)
	require.NoError(t, err)
	assert.Equal(t, 2, in)
	assert.Equal(t, 1, g.Stats().SelfLoops)
}

// TestAddEdges_Atomic verifies a single bad endpoint rejects the whole batch.
func TestAddEdges_Atomic(t *testing.T) {
	g := core.NewDynamic[string, int64]()
	a := g.AddNode(PayloadA)
	b := g.AddNode(PayloadB)

	err := g.AddEdges(
		core.Edge[int64]{From: a, To: b, Weight: Weight1},
		core.Edge[int64]{From: b, To: 9, Weight: Weight1},
	)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.ContainsEdge(a, b))
}

// TestRemoveEdge_FirstMatchOnly removes exactly one of several parallel edges.
func TestRemoveEdge_FirstMatchOnly(t *testing.T) {
	g := core.NewDynamic[string, int64]()
	a := g.AddNode(PayloadA)
	b := g.AddNode(PayloadB)
	c := g.AddNode(PayloadC)
	require.NoError(t, g.AddEdge(a, b, Weight1))
	require.NoError(t, g.AddEdge(a, c, Weight2))
	require.NoError(t, g.AddEdge(a, b, Weight7))

	require.NoError(t, g.RemoveEdge(a, b))
	arcs, err := g.OutArcs(a)
	require.NoError(t, err)
	assert.Equal(t, []core.Arc[int64]{{To: c, Weight: Weight2}, {To: b, Weight: Weight7}}, arcs)
	assert.True(t, g.ContainsEdge(a, b))

	require.NoError(t, g.RemoveEdge(a, b))
	assert.False(t, g.ContainsEdge(a, b))

	err = g.RemoveEdge(a, b)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	var ge *core.GraphError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, a, ge.From)
	assert.Equal(t, b, ge.To)
	assert.Equal(t, 1, g.EdgeCount())
}

// TestRemoveNode_IncidentEdgesAndTombstone checks incident-edge cleanup and index stability.
func TestRemoveNode_IncidentEdgesAndTombstone(t *testing.T) {
	g := diamond(t)
	require.NoError(t, g.AddEdge(1, 1, Weight1)) // self-loop on B
	require.NoError(t, g.AddEdge(3, 1, Weight2)) // D→B

	require.NoError(t, g.RemoveNode(1))

	assert.False(t, g.ContainsNode(1))
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 4, g.SlotCount())
	assert.Equal(t, []int{0, 2, 3}, g.Nodes())
	// A→C(4) and C→D(1) survive.
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []int{2}, targets(t, g, 0))
	assert.Equal(t, []int{3}, targets(t, g, 2))
	assert.Empty(t, targets(t, g, 3))

	// Survivors keep their handles and payloads.
	p, err := g.Node(3)
	require.NoError(t, err)
	assert.Equal(t, PayloadD, p)

	// The tombstone is never reused.
	assert.Equal(t, 4, g.AddNode("E"))

	// Removing twice is an error, not a panic.
	require.ErrorIs(t, g.RemoveNode(1), core.ErrNodeNotFound)
	_, err = g.Node(1)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	require.ErrorIs(t, g.AddEdge(0, 1, Weight1), core.ErrNodeNotFound)

	s := g.Stats()
	assert.Equal(t, 1, s.Tombstones)
	assert.Equal(t, 0, s.SelfLoops)
}

// TestRemoveNode_ReverseIndexStaysConsistent interleaves removals and checks degrees.
func TestRemoveNode_ReverseIndexStaysConsistent(t *testing.T) {
	g := diamond(t)
	require.NoError(t, g.RemoveNode(2)) // C

	in, err := g.InDegree(3)
	require.NoError(t, err)
	assert.Equal(t, 1, in) // only B→D remains
	out, err := g.OutDegree(0)
	require.NoError(t, err)
	assert.Equal(t, 1, out) // only A→B remains

	require.NoError(t, g.RemoveNode(3))
	out, err = g.OutDegree(1)
	require.NoError(t, err)
	assert.Equal(t, 0, out)
	assert.Equal(t, 1, g.EdgeCount())
}

// TestUpdateNode_PreservesEdges replaces the payload only.
func TestUpdateNode_PreservesEdges(t *testing.T) {
	g := diamond(t)
	require.NoError(t, g.UpdateNode(1, "B'"))
	p, err := g.Node(1)
	require.NoError(t, err)
	assert.Equal(t, "B'", p)
	assert.Equal(t, []int{2, 3}, targets(t, g, 1))

	require.ErrorIs(t, g.UpdateNode(42, "x"), core.ErrNodeNotFound)
}

// TestContainsEdge_AbsentEndpoints never errors.
func TestContainsEdge_AbsentEndpoints(t *testing.T) {
	g := diamond(t)
	assert.True(t, g.ContainsEdge(0, 1))
	assert.False(t, g.ContainsEdge(1, 0))
	assert.False(t, g.ContainsEdge(-3, 0))
	assert.False(t, g.ContainsEdge(0, 99))
}

// TestEdges_Ordering lists edges by source then adjacency order.
func TestEdges_Ordering(t *testing.T) {
	g := diamond(t)
	want := []core.Edge[int64]{
		{From: 0, To: 1, Weight: Weight1},
		{From: 0, To: 2, Weight: Weight4},
		{From: 1, To: 2, Weight: Weight1},
		{From: 1, To: 3, Weight: Weight1},
		{From: 2, To: 3, Weight: Weight1},
	}
	assert.Equal(t, want, g.Edges())
}

// TestClone_Independent mutates a clone and checks the original is untouched.
func TestClone_Independent(t *testing.T) {
	g := diamond(t)
	c := g.Clone()
	require.NoError(t, c.RemoveNode(0))
	require.NoError(t, c.AddEdge(3, 2, Weight7))

	assert.Equal(t, 5, g.EdgeCount())
	assert.True(t, g.ContainsNode(0))
	assert.False(t, g.ContainsEdge(3, 2))
	assert.Equal(t, 4, c.EdgeCount())
}

// TestClear_ResetsHandles drops everything.
func TestClear_ResetsHandles(t *testing.T) {
	g := diamond(t)
	g.Clear()
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, 0, g.AddNode(PayloadA))
}

// TestRestore_RoundTrip rebuilds a graph slot-for-slot.
func TestRestore_RoundTrip(t *testing.T) {
	g := diamond(t)
	require.NoError(t, g.RemoveNode(2))

	n := g.SlotCount()
	payloads := make([]string, n)
	live := make([]bool, n)
	adj := make([][]core.Arc[int64], n)
	for i := 0; i < n; i++ {
		payloads[i], live[i] = g.Slot(i)
		adj[i] = g.Adjacency(i)
	}

	r, err := core.Restore(payloads, live, adj)
	require.NoError(t, err)
	assert.Equal(t, g.Nodes(), r.Nodes())
	assert.Equal(t, g.Edges(), r.Edges())
	assert.Equal(t, g.Stats(), r.Stats())
	in, err := r.InDegree(3)
	require.NoError(t, err)
	assert.Equal(t, 1, in)
}

// TestRestore_Invalid rejects inconsistent slot arrays.
func TestRestore_Invalid(t *testing.T) {
	_, err := core.Restore([]string{"a"}, []bool{true, true}, [][]core.Arc[int64]{nil})
	assert.ErrorIs(t, err, core.ErrIndexOutOfBounds)

	_, err = core.Restore([]string{"a"}, []bool{true}, [][]core.Arc[int64]{{{To: 3}}})
	assert.ErrorIs(t, err, core.ErrIndexOutOfBounds)

	_, err = core.Restore([]string{"a", "b"}, []bool{true, false}, [][]core.Arc[int64]{{{To: 1}}, nil})
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = core.Restore([]string{"a", "b"}, []bool{true, false}, [][]core.Arc[int64]{nil, {{To: 0}}})
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestUnitWeight compiles and runs an unweighted instantiation.
func TestUnitWeight(t *testing.T) {
	g := core.NewDynamic[int, core.Unit]()
	a := g.AddNode(1)
	b := g.AddNode(2)
	require.NoError(t, g.AddEdge(a, b, core.Unit{}))
	assert.True(t, g.ContainsEdge(a, b))
	require.NoError(t, g.RemoveEdge(a, b))
	assert.True(t, errors.Is(g.RemoveEdge(a, b), core.ErrEdgeNotFound))
}
