// File: methods_clone.go
// Role: Cloning, clearing and slot-level reconstruction of Dynamic graphs.
// Determinism:
//   - Clone and Restore preserve handles, tombstones and adjacency order exactly.
// AI-HINT (file):
//   - Restore is the inverse of reading Slot/Adjacency for every slot; csr.Thaw relies on it.

package core

// Clone returns a deep copy: slots, tombstones, adjacency lists and reverse index.
// Payload values are copied shallowly.
//
// Complexity: O(V + E).
func (d *Dynamic[T, W]) Clone() *Dynamic[T, W] {
	c := &Dynamic[T, W]{
		nodes: d.nodes.clone(),
		out:   make([][]Arc[W], len(d.out)),
		in:    make([][]int, len(d.in)),
		edges: d.edges,
	}
	for i := range d.out {
		if d.out[i] != nil {
			c.out[i] = append([]Arc[W](nil), d.out[i]...)
		}
		if d.in[i] != nil {
			c.in[i] = append([]int(nil), d.in[i]...)
		}
	}

	return c
}

// Clear drops every node and edge. Handles restart from 0.
// Complexity: O(1) (old storage is released to the GC).
func (d *Dynamic[T, W]) Clear() {
	d.nodes = NewNodeStore[T](0)
	d.out = nil
	d.in = nil
	d.edges = 0
}

// Restore rebuilds a Dynamic graph from parallel slot arrays.
//
// Implementation:
//   - Stage 1: Validate that live and adjacency have len(payloads) entries.
//   - Stage 2: Validate every arc: source live, target in range and live.
//   - Stage 3: Copy payloads and tombstones into a fresh store; copy arcs in order
//     and rebuild the reverse index.
//
// Inputs:
//   - payloads[i]: payload of slot i (ignored for tombstones).
//   - live[i]: whether slot i is a live node.
//   - adjacency[i]: outgoing arcs of slot i, in the order they must be kept.
//
// Errors:
//   - IndexOutOfBounds(len(payloads)) if live or adjacency has a different length.
//   - IndexOutOfBounds(to) if an arc targets outside [0, len(payloads)).
//   - NodeNotFound(i) if a tombstoned slot carries arcs, or an arc targets a tombstone.
//
// Complexity: O(V + E).
func Restore[T any, W any](payloads []T, live []bool, adjacency [][]Arc[W]) (*Dynamic[T, W], error) {
	n := len(payloads)
	if len(live) != n || len(adjacency) != n {
		return nil, IndexOutOfBounds(n)
	}
	for i, list := range adjacency {
		if !live[i] && len(list) > 0 {
			return nil, NodeNotFound(i)
		}
		for _, a := range list {
			if a.To < 0 || a.To >= n {
				return nil, IndexOutOfBounds(a.To)
			}
			if !live[a.To] {
				return nil, NodeNotFound(a.To)
			}
		}
	}

	d := NewDynamic[T, W](WithNodeCapacity(n))
	for i := 0; i < n; i++ {
		d.AddNode(payloads[i])
	}
	for i := 0; i < n; i++ {
		if !live[i] {
			d.out[i] = nil
			d.in[i] = nil
			_ = d.nodes.Remove(i)
		}
	}
	for from, list := range adjacency {
		if len(list) == 0 {
			continue
		}
		d.out[from] = make([]Arc[W], 0, len(list))
		for _, a := range list {
			d.link(from, a.To, a.Weight)
		}
	}

	return d, nil
}
