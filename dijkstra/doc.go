// Package dijkstra provides Dijkstra's shortest-path algorithm over csr.Frozen
// graphs whose weight type satisfies core.Weight.
//
// Overview:
//
//   - Dijkstra computes single-source distances and predecessors in
//     O((V + E) log E) time using a binary-heap priority queue
//     (github.com/emirpasic/gods/queues/priorityqueue).
//   - ShortestPath answers one start→stop query and stops as soon as stop is settled.
//   - Distances start from the zero value of W, which must be the additive identity.
//
// Determinism:
//
//   - Queue entries are ordered by (distance, handle), and rows are scanned in CSR
//     order; a strictly shorter candidate is required to replace a predecessor,
//     so equal-cost alternatives keep the first one found.
//
// Bounded latency:
//
//   - WithMaxPops(n) caps priority-queue pops per call; a run that needs more
//     returns ErrBudgetExceeded instead of a partial answer.
//
// Non-goals:
//
//   - Negative weights are not detected. Results for graphs containing them are
//     unspecified, but the algorithm always terminates and never panics.
//
// Example:
//
//	path, cost, ok, err := dijkstra.ShortestPath(f, a, d)
//	res, err := dijkstra.Dijkstra(f, a, dijkstra.WithMaxPops(10_000))
package dijkstra
