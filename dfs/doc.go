// Package dfs implements depth-first search traversal, cycle detection,
// and topological sort on a directed csr.Frozen graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before backtracking.
//     Supports pre-order and post-order hooks, cancellation via context.Context,
//     depth limiting, neighbor filtering and forest traversal.
//   - FindCycle / HasCycle: three-color (White, Gray, Black) search that stops at
//     the first back edge and returns the closed cycle [v0 … v0].
//   - DetectCycles: every cycle closed by a back edge, canonicalised by minimal
//     rotation (Booth's algorithm), deduplicated and sorted.
//   - TopologicalSort: reverse DFS finish order; ok=false iff the graph is cyclic.
//
// Determinism:
//
//	Roots are taken in ascending handle order and successors in CSR order,
//	so every result is reproducible for a fixed snapshot.
//
// Complexity:
//
//   - DFS, FindCycle, TopologicalSort: Time O(V+E), Memory O(V)
//   - DetectCycles: Time O(V+E + C·L), Memory O(V + C·L)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - core.ErrNodeNotFound    DFS start is not a live node
//   - context.Canceled        cancelled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
