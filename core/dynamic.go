// SPDX-License-Identifier: MIT
//
// File: dynamic.go
// Role: Dynamic graph type, construction options and internal adjacency helpers.
// Policy:
//   - The only representation that permits structural mutation.
//   - Adjacency order is insertion order; removals preserve the order of survivors.
//   - A reverse index (sources per target, with multiplicity) keeps RemoveNode O(degree).
// Concurrency:
//   - Not safe for concurrent use. Serialise writers externally.

package core

// DynamicOption configures a Dynamic graph at construction time.
type DynamicOption func(*dynamicConfig)

// dynamicConfig holds construction-time capacity hints.
type dynamicConfig struct {
	nodeCapacity int
}

// WithNodeCapacity pre-allocates room for n node slots. Negative n is ignored.
func WithNodeCapacity(n int) DynamicOption {
	return func(c *dynamicConfig) {
		if n > 0 {
			c.nodeCapacity = n
		}
	}
}

// Dynamic is the mutable adjacency-list graph.
//
// Node payloads live in a NodeStore; out[i] is node i's ordered outgoing arcs;
// in[i] lists, with multiplicity, the sources of edges into i.
// Tombstoned slots have nil out/in entries.
type Dynamic[T any, W any] struct {
	nodes *NodeStore[T]
	out   [][]Arc[W]
	in    [][]int
	edges int
}

// NewDynamic returns an empty Dynamic graph.
// Complexity: O(capacity).
func NewDynamic[T any, W any](opts ...DynamicOption) *Dynamic[T, W] {
	var cfg dynamicConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Dynamic[T, W]{
		nodes: NewNodeStore[T](cfg.nodeCapacity),
		out:   make([][]Arc[W], 0, cfg.nodeCapacity),
		in:    make([][]int, 0, cfg.nodeCapacity),
	}
}

// removeArcsTo filters every arc targeting to out of list, in place, keeping order.
// Returns the shortened list and the number of arcs removed.
func removeArcsTo[W any](list []Arc[W], to int) ([]Arc[W], int) {
	kept := list[:0]
	for _, a := range list {
		if a.To != to {
			kept = append(kept, a)
		}
	}
	removed := len(list) - len(kept)
	// Zero the abandoned tail so dropped weights are not retained.
	var zero Arc[W]
	for i := len(kept); i < len(list); i++ {
		list[i] = zero
	}

	return kept, removed
}

// removeOne deletes the first occurrence of v from list, keeping order.
func removeOne(list []int, v int) []int {
	for i, x := range list {
		if x == v {
			return append(list[:i], list[i+1:]...)
		}
	}

	return list
}
