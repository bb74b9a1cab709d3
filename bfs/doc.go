// Package bfs provides breadth-first search over a csr.Frozen graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - BFS returns a Result containing:
//   - Order: visit sequence
//   - Depth: per-slot distance from start (Unreached if never discovered)
//   - Parent: per-slot predecessor in the BFS tree
//   - ShortestPath, ShortestPathLen and Reachable answer point-to-point queries
//     with an early exit as soon as the target is discovered.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	Neighbors are scanned in CSR order, which is the adjacency order the
//	Dynamic graph had at freeze time, so the visit sequence and every
//	predecessor choice are reproducible for a fixed snapshot.
//
// Complexity (V = slots, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue and the Depth/Parent arrays
//
// Usage
//
//	f := csr.Freeze(d)
//	path, ok, err := bfs.ShortestPath(f, a, d)
//
//	res, err := bfs.BFS(f, a,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(id, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil            if the graph pointer is nil.
//   - core.ErrNodeNotFound   if an endpoint is not a live node.
//   - ErrOptionViolation     if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit; ctx.Err() on cancellation.
package bfs
