// File: methods_vertices.go
// Role: Node lifecycle & queries on the Dynamic graph.
//
// Determinism:
//   - Handles are assigned in insertion order and never reused.
//   - Nodes() returns live handles ascending.
//
// AI-Hints (file):
//   - RemoveNode leaves a tombstone; surviving handles never shift.
//   - Every query reports NodeNotFound for any index that is not a live node,
//     including negative or out-of-range ones.
package core

// AddNode appends a node carrying payload and returns its handle.
//
// Implementation:
//   - Stage 1: Append the payload to the node store.
//   - Stage 2: Append empty outgoing and incoming buckets for the new slot.
//
// Errors:
//   - None; AddNode never fails.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (d *Dynamic[T, W]) AddNode(payload T) int {
	idx := d.nodes.Add(payload)
	d.out = append(d.out, nil)
	d.in = append(d.in, nil)

	return idx
}

// ContainsNode reports whether idx is a live node.
// Complexity: O(1).
func (d *Dynamic[T, W]) ContainsNode(idx int) bool {
	return d.nodes.Contains(idx)
}

// Node returns the payload of a live node.
//
// Errors:
//   - NodeNotFound(idx) if idx is not live.
//
// Complexity: O(1).
func (d *Dynamic[T, W]) Node(idx int) (T, error) {
	payload, live := d.nodes.Slot(idx)
	if !live {
		return payload, NodeNotFound(idx)
	}

	return payload, nil
}

// UpdateNode replaces the payload of a live node in place. Edges are untouched.
//
// Errors:
//   - NodeNotFound(idx) if idx is not live.
//
// Complexity: O(1).
func (d *Dynamic[T, W]) UpdateNode(idx int, payload T) error {
	if !d.nodes.Contains(idx) {
		return NodeNotFound(idx)
	}

	return d.nodes.Set(idx, payload)
}

// RemoveNode deletes a live node and every incident edge, then tombstones its slot.
//
// Implementation:
//   - Stage 1: Validate liveness (NodeNotFound).
//   - Stage 2: For each outgoing arc, drop one reverse-index entry at the target.
//   - Stage 3: For each distinct source in the reverse index, filter its arcs into idx.
//   - Stage 4: Release buckets and tombstone the slot in the node store.
//
// Behavior highlights:
//   - Self-loops are counted once, via the outgoing list.
//   - Surviving adjacency lists keep their relative order.
//
// Complexity:
//   - Time O(deg(idx) + Σ outdeg(src) over distinct sources), Space O(in-degree).
func (d *Dynamic[T, W]) RemoveNode(idx int) error {
	if !d.nodes.Contains(idx) {
		return NodeNotFound(idx)
	}

	// Stage 2: outgoing arcs.
	for _, a := range d.out[idx] {
		if a.To != idx {
			d.in[a.To] = removeOne(d.in[a.To], idx)
		}
	}
	d.edges -= len(d.out[idx])

	// Stage 3: incoming arcs from other nodes.
	seen := make(map[int]struct{}, len(d.in[idx]))
	var removed int
	for _, src := range d.in[idx] {
		if src == idx {
			continue
		}
		if _, done := seen[src]; done {
			continue
		}
		seen[src] = struct{}{}
		d.out[src], removed = removeArcsTo(d.out[src], idx)
		d.edges -= removed
	}

	// Stage 4: release and tombstone.
	d.out[idx] = nil
	d.in[idx] = nil

	return d.nodes.Remove(idx)
}

// Nodes returns the live handles in ascending order.
// Complexity: O(SlotCount).
func (d *Dynamic[T, W]) Nodes() []int {
	return d.nodes.Indices()
}

// NodeCount returns the number of live nodes.
func (d *Dynamic[T, W]) NodeCount() int { return d.nodes.Live() }

// SlotCount returns the number of node slots, including tombstones.
// Handles range over [0, SlotCount()).
func (d *Dynamic[T, W]) SlotCount() int { return d.nodes.Len() }

// Slot returns the payload and liveness of slot idx without error reporting.
func (d *Dynamic[T, W]) Slot(idx int) (T, bool) { return d.nodes.Slot(idx) }

// InDegree returns the number of edges into a live node (self-loops included).
//
// Errors:
//   - NodeNotFound(idx) if idx is not live.
func (d *Dynamic[T, W]) InDegree(idx int) (int, error) {
	if !d.nodes.Contains(idx) {
		return 0, NodeNotFound(idx)
	}

	return len(d.in[idx]), nil
}

// OutDegree returns the number of edges out of a live node (self-loops included).
//
// Errors:
//   - NodeNotFound(idx) if idx is not live.
func (d *Dynamic[T, W]) OutDegree(idx int) (int, error) {
	if !d.nodes.Contains(idx) {
		return 0, NodeNotFound(idx)
	}

	return len(d.out[idx]), nil
}
