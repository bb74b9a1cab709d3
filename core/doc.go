// Package core provides the mutable half of the dual-mode graph engine:
// the Node Store, the Dynamic adjacency-list graph, the shared value types
// (Arc, Edge, Weight, Unit) and the closed error taxonomy.
//
// The Dynamic graph G = (V,E) is written during a build phase and compiled
// by csr.Freeze into an immutable CSR snapshot for querying:
//
//   - Nodes are dense int handles assigned in insertion order.
//   - Removal tombstones a slot; handles are never renumbered or reused.
//   - Edges are directed; self-loops and parallel edges are kept as given.
//   - Adjacency lists keep insertion order, and that order survives freeze/thaw.
//   - A reverse index makes RemoveNode O(degree) instead of O(E).
//
// Construction:
//
//	g := core.NewDynamic[string, int64](core.WithNodeCapacity(1024))
//	a := g.AddNode("A")
//	b := g.AddNode("B")
//	_ = g.AddEdge(a, b, 7)
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(payload T) int                  // O(1) amortized
//	RemoveNode(idx int) error               // O(degree)
//	UpdateNode(idx int, payload T) error    // O(1)
//	ContainsNode(idx int) bool              // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to int, w W) error        // O(1) amortized
//	AddEdges(edges ...Edge[W]) error        // all-or-nothing batch
//	RemoveEdge(from, to int) error          // O(outdeg(from) + indeg(to))
//	ContainsEdge(from, to int) bool         // O(outdeg(from))
//
// Errors:
//
// Every failure is a *GraphError whose Kind is one of KindNodeNotFound,
// KindEdgeNotFound, KindAlreadyFrozen, KindGraphNotFrozen or
// KindIndexOutOfBounds. Test with errors.Is against the sentinels
// (ErrNodeNotFound, ...) and recover indices with errors.As:
//
//	var ge *core.GraphError
//	if errors.As(err, &ge) && ge.Kind == core.KindNodeNotFound {
//	    log.Printf("missing node %d", ge.Node)
//	}
//
// Concurrency:
//
// Dynamic is not safe for concurrent use. Freeze it and share the
// resulting *csr.Frozen instead; that value is immutable.
package core
