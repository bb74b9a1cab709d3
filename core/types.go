// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Value types shared by every representation: arcs, edges, the weight
//       constraint and the zero-size Unit weight.
// Policy:
//   - Node handles are plain int indices into dense slot arrays.
//   - No node-to-node pointers anywhere; cyclic graphs never form ownership cycles.

package core

// Weight is the constraint required by weighted algorithms (Dijkstra).
// Values must be ordered, summable, and their zero value must be the additive identity.
// Storage itself places no constraint on W; only the algorithms that add weights do.
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Unit is the zero-cost weight for unweighted graphs.
//
//	g := core.NewDynamic[string, core.Unit]()
//	_ = g.AddEdge(a, b, core.Unit{})
type Unit = struct{}

// Arc is one outgoing half of a directed edge as stored in an adjacency list
// or a CSR row: the target handle and the edge weight.
type Arc[W any] struct {
	// To is the target node handle.
	To int

	// Weight is the caller-supplied edge weight.
	Weight W
}

// Edge is a directed relation From→To carrying Weight.
// Parallel edges between the same pair are distinct values; nothing deduplicates them.
type Edge[W any] struct {
	// From is the source node handle.
	From int

	// To is the target node handle.
	To int

	// Weight is the caller-supplied edge weight.
	Weight W
}
