// File: methods_edges.go
// Role: Edge lifecycle & queries on the Dynamic graph.
// Determinism:
//   - Edges() lists edges by source ascending, then adjacency (insertion) order.
// AI-HINT (file):
//   - Self-loops and parallel edges are always permitted; nothing deduplicates.
//   - AddEdges validates the whole batch before writing anything.

package core

// AddEdge appends a directed edge from→to with weight w to from's adjacency list.
//
// Errors:
//   - NodeNotFound naming the first absent endpoint (from checked before to).
//
// Complexity: O(1) amortized.
func (d *Dynamic[T, W]) AddEdge(from, to int, w W) error {
	if !d.nodes.Contains(from) {
		return NodeNotFound(from)
	}
	if !d.nodes.Contains(to) {
		return NodeNotFound(to)
	}
	d.link(from, to, w)

	return nil
}

// AddEdges inserts a batch of edges atomically: every endpoint is validated
// first, and a single missing endpoint fails the whole call with the graph unchanged.
//
// Errors:
//   - NodeNotFound naming the first absent endpoint in batch order.
//
// Complexity: O(len(edges)) amortized.
func (d *Dynamic[T, W]) AddEdges(edges ...Edge[W]) error {
	for _, e := range edges {
		if !d.nodes.Contains(e.From) {
			return NodeNotFound(e.From)
		}
		if !d.nodes.Contains(e.To) {
			return NodeNotFound(e.To)
		}
	}
	for _, e := range edges {
		d.link(e.From, e.To, e.Weight)
	}

	return nil
}

// link writes an already-validated edge.
func (d *Dynamic[T, W]) link(from, to int, w W) {
	d.out[from] = append(d.out[from], Arc[W]{To: to, Weight: w})
	d.in[to] = append(d.in[to], from)
	d.edges++
}

// RemoveEdge removes the first arc from→to in from's adjacency list.
// The remaining arcs (including other parallel from→to edges) keep their order.
//
// Errors:
//   - NodeNotFound if either endpoint is not live.
//   - EdgeNotFound(from, to) if no such arc exists.
//
// Complexity: O(outdeg(from) + indeg(to)).
func (d *Dynamic[T, W]) RemoveEdge(from, to int) error {
	if !d.nodes.Contains(from) {
		return NodeNotFound(from)
	}
	if !d.nodes.Contains(to) {
		return NodeNotFound(to)
	}
	list := d.out[from]
	for i, a := range list {
		if a.To != to {
			continue
		}
		copy(list[i:], list[i+1:])
		list[len(list)-1] = Arc[W]{}
		d.out[from] = list[:len(list)-1]
		d.in[to] = removeOne(d.in[to], from)
		d.edges--

		return nil
	}

	return EdgeNotFound(from, to)
}

// ContainsEdge reports whether at least one edge from→to exists.
// Absent endpoints yield false.
//
// Complexity: O(outdeg(from)).
func (d *Dynamic[T, W]) ContainsEdge(from, to int) bool {
	if !d.nodes.Contains(from) || !d.nodes.Contains(to) {
		return false
	}
	for _, a := range d.out[from] {
		if a.To == to {
			return true
		}
	}

	return false
}

// OutArcs returns a copy of a live node's outgoing arcs in adjacency order.
//
// Errors:
//   - NodeNotFound(idx) if idx is not live.
//
// Complexity: O(outdeg(idx)).
func (d *Dynamic[T, W]) OutArcs(idx int) ([]Arc[W], error) {
	if !d.nodes.Contains(idx) {
		return nil, NodeNotFound(idx)
	}
	out := make([]Arc[W], len(d.out[idx]))
	copy(out, d.out[idx])

	return out, nil
}

// Adjacency returns the internal outgoing arc list of slot idx without copying.
// The slice is read-only and is invalidated by the next mutation.
// Out-of-range and tombstoned slots yield nil.
//
// Complexity: O(1).
func (d *Dynamic[T, W]) Adjacency(idx int) []Arc[W] {
	if idx < 0 || idx >= len(d.out) {
		return nil
	}

	return d.out[idx]
}

// EdgeCount returns the number of edges (parallel edges counted separately).
func (d *Dynamic[T, W]) EdgeCount() int { return d.edges }

// Edges returns every edge, by source ascending then adjacency order.
// Complexity: O(V + E).
func (d *Dynamic[T, W]) Edges() []Edge[W] {
	out := make([]Edge[W], 0, d.edges)
	for from, list := range d.out {
		for _, a := range list {
			out = append(out, Edge[W]{From: from, To: a.To, Weight: a.Weight})
		}
	}

	return out
}
