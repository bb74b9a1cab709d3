// Package dualgraph is a directed graph engine with two modes: a mutable
// adjacency-list graph for building and editing, and an immutable
// Compressed-Sparse-Row snapshot for fast, concurrent analysis.
//
// 🚀 How it fits together
//
//	core/      — Dynamic graph: stable int handles, tombstones, parallel edges, self-loops
//	csr/       — Frozen graph: Freeze, Thaw, Transpose, layout validation
//	bfs/       — breadth-first traversal, reachability, fewest-edges paths
//	dijkstra/  — non-negative weighted shortest paths (gods priority queue)
//	dfs/       — depth-first traversal, cycle detection, topological sort
//	scc/       — Tarjan strongly connected components and condensation
//	graph/     — the container: Dynamic ⇄ Frozen state machine, logrus logging, OTel metrics
//	builder/   — deterministic generators for tests and benchmarks
//	examples/  — runnable end-to-end scenarios
//	cmd/dualgraph — CLI running queries over a YAML fixture
//
// ✨ Lifecycle
//
//	g := graph.New[string, int64]()
//	a, _ := g.AddNode("A")
//	b, _ := g.AddNode("B")
//	_ = g.AddEdge(a, b, 3)
//	_ = g.Freeze()                       // mutations now fail with core.ErrAlreadyFrozen
//	path, cost, ok, _ := graph.ShortestWeightedPath(g, a, b)
//	_ = g.Unfreeze()                     // queries now fail with core.ErrGraphNotFrozen
//
// Handles are never reused: removing a node leaves a tombstone, and every
// surviving handle keeps its meaning across Freeze and Unfreeze.
package dualgraph
