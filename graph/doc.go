// SPDX-License-Identifier: MIT

// Package graph is the dual-mode container: a directed graph that is mutated
// freely while Dynamic, compiled by Freeze into an immutable CSR snapshot, and
// queried while Frozen.
//
// State machine:
//
//	            Freeze()
//	StateDynamic ──────────▶ StateFrozen
//	             ◀──────────
//	            Unfreeze()
//
//   - AddNode, RemoveNode, UpdateNode, AddEdge, AddEdges, RemoveEdge: Dynamic only,
//     core.ErrAlreadyFrozen otherwise.
//   - IsReachable, ShortestPathLen, ShortestPath, ShortestWeightedPath, HasCycle,
//     FindCycle, TopologicalSort, StronglyConnectedComponents, Snapshot, Unfreeze:
//     Frozen only, core.ErrGraphNotFrozen otherwise.
//   - Freeze while Frozen: core.ErrAlreadyFrozen.
//   - ContainsNode, ContainsEdge, Node, Nodes, Edges, NodeCount, EdgeCount: both states.
//
// Node handles are stable for the lifetime of a node across any number of
// freeze/unfreeze cycles; removed handles are never reused.
//
// Observability:
//
//   - WithLogger: transitions and rejected calls at Debug level via logrus.
//   - WithMeterProvider: OpenTelemetry instruments dualgraph_freeze_duration_seconds,
//     dualgraph_transitions_total, dualgraph_query_duration_seconds and
//     dualgraph_guard_rejections_total.
//
// A Graph is not safe for concurrent use. Snapshot returns the *csr.Frozen value
// that any number of goroutines may query directly with the bfs, dfs, dijkstra
// and scc packages.
package graph
