// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic read-only summary of a Dynamic graph.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity.

package core

// GraphStats is a value snapshot of graph sizes.
type GraphStats struct {
	// Slots is the number of node slots, tombstones included.
	Slots int

	// Nodes is the number of live nodes.
	Nodes int

	// Tombstones is Slots - Nodes.
	Tombstones int

	// Edges is the number of edges (parallel edges counted separately).
	Edges int

	// SelfLoops is the number of edges with From == To.
	SelfLoops int
}

// Stats produces a read-only snapshot of sizes, including a self-loop tally.
//
// Implementation:
//   - Stage 1: Read slot and live counters from the node store.
//   - Stage 2: Scan adjacency once for self-loops.
//
// Determinism:
//   - Deterministic for a fixed graph state.
//
// Complexity:
//   - Time O(V+E), Space O(1).
//
// AI-Hints:
//   - Use Stats() in tests to assert tombstone bookkeeping after RemoveNode.
func (d *Dynamic[T, W]) Stats() GraphStats {
	s := GraphStats{
		Slots: d.nodes.Len(),
		Nodes: d.nodes.Live(),
		Edges: d.edges,
	}
	s.Tombstones = s.Slots - s.Nodes
	for from, list := range d.out {
		for _, a := range list {
			if a.To == from {
				s.SelfLoops++
			}
		}
	}

	return s
}
