// Package dijkstra implements Dijkstra's shortest-path algorithm on csr.Frozen graphs.
//
// Notes on implementation choices:
//
//   - The priority queue is gods' binary-heap priorityqueue with a (dist, id) comparator.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the queue and
//     discarding stale entries at pop time against the settled flags.
//   - Point-to-point queries stop as soon as the target is popped.
//   - Weights are not validated; negative weights give unspecified (but non-panicking) results.
package dijkstra

import (
	"fmt"

	"github.com/emirpasic/gods/queues/priorityqueue"

	"github.com/katalvlaran/dualgraph/core"
	"github.com/katalvlaran/dualgraph/csr"
)

// noTarget disables early exit.
const noTarget = -1

// Dijkstra computes shortest distances from source to every reachable node of f.
//
// Preconditions and validation (in order):
//  1. f must be non-nil (ErrGraphNil).
//  2. options must be valid (ErrOptionViolation).
//  3. source must be a live node (core.NodeNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
func Dijkstra[T any, W core.Weight](f *csr.Frozen[T, W], source int, opts ...Option) (*Result[W], error) {
	r, err := newRunner(f, source, noTarget, opts)
	if err != nil {
		return nil, err
	}
	if err = r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// ShortestPath returns the minimum-cost path start→stop (both inclusive) and its cost.
// ok is false if stop is unreachable; start == stop yields ([start], 0, true).
//
// Errors:
//   - ErrGraphNil, ErrOptionViolation, ErrBudgetExceeded as Dijkstra.
//   - core.NodeNotFound naming start, then stop, if either is not live.
func ShortestPath[T any, W core.Weight](f *csr.Frozen[T, W], start, stop int, opts ...Option) ([]int, W, bool, error) {
	var zero W
	r, err := newRunner(f, start, stop, opts)
	if err != nil {
		return nil, zero, false, err
	}
	if !f.Contains(stop) {
		return nil, zero, false, core.NodeNotFound(stop)
	}
	if err = r.process(); err != nil {
		return nil, zero, false, err
	}
	path, cost, ok := r.res.PathTo(stop)

	return path, cost, ok, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[T any, W core.Weight] struct {
	g       *csr.Frozen[T, W]    // The input graph; read-only.
	options Options              // Budget configuration.
	stop    int                  // Early-exit target or noTarget.
	settled []bool               // Whether a node's distance is final.
	pq      *priorityqueue.Queue // Min-queue of item[W].
	res     *Result[W]
}

// item is a queue entry: candidate distance for a node.
type item[W core.Weight] struct {
	id   int
	dist W
}

// byDistThenID orders items by distance, then handle, so pops are deterministic.
func byDistThenID[W core.Weight](a, b interface{}) int {
	x, y := a.(item[W]), b.(item[W])
	switch {
	case x.dist < y.dist:
		return -1
	case x.dist > y.dist:
		return 1
	case x.id < y.id:
		return -1
	case x.id > y.id:
		return 1
	}

	return 0
}

// newRunner validates inputs and seeds the queue with the source at distance 0.
func newRunner[T any, W core.Weight](f *csr.Frozen[T, W], source, stop int, opts []Option) (*runner[T, W], error) {
	if f == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !f.Contains(source) {
		return nil, core.NodeNotFound(source)
	}

	n := f.SlotCount()
	r := &runner[T, W]{
		g:       f,
		options: cfg,
		stop:    stop,
		settled: make([]bool, n),
		pq:      priorityqueue.NewWith(byDistThenID[W]),
		res: &Result[W]{
			Source:  source,
			Dist:    make([]W, n),
			Reached: make([]bool, n),
			Prev:    make([]int, n),
		},
	}
	for i := range r.res.Prev {
		r.res.Prev[i] = -1
	}
	r.res.Reached[source] = true
	r.pq.Enqueue(item[W]{id: source})

	return r, nil
}

// process is the core loop: pop the closest unsettled node, settle it, relax its row.
//
// Loop termination conditions:
//
//   - The queue becomes empty (all reachable nodes settled).
//   - The early-exit target is popped.
//   - The pop budget is exhausted (ErrBudgetExceeded).
func (r *runner[T, W]) process() error {
	pops := 0
	for !r.pq.Empty() {
		if r.options.MaxPops > 0 && pops == r.options.MaxPops {
			return fmt.Errorf("%w: %d pops", ErrBudgetExceeded, pops)
		}
		v, _ := r.pq.Dequeue()
		pops++
		it := v.(item[W])

		// Skip stale entries.
		if r.settled[it.id] {
			continue
		}
		r.settled[it.id] = true
		if it.id == r.stop {
			return nil
		}
		r.relax(it.id)
	}

	return nil
}

// relax improves tentative distances through u and enqueues every improvement.
func (r *runner[T, W]) relax(u int) {
	targets, weights := r.g.Out(u)
	du := r.res.Dist[u]
	for k, v := range targets {
		if r.settled[v] {
			continue
		}
		nd := du + weights[k]
		if r.res.Reached[v] && nd >= r.res.Dist[v] {
			continue
		}
		r.res.Dist[v] = nd
		r.res.Reached[v] = true
		r.res.Prev[v] = u
		r.pq.Enqueue(item[W]{id: v, dist: nd})
	}
}
