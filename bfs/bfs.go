// Package bfs provides breadth-first search over a csr.Frozen graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from a start node,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dualgraph/core"
	"github.com/katalvlaran/dualgraph/csr"
)

// queueItem pairs a node handle with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker[T any, W any] struct {
	graph *csr.Frozen[T, W]
	opts  Options
	ctx   context.Context
	queue []queueItem
	head  int
	stop  int // early-exit target, Unreached for a full traversal
	done  bool
	res   *Result
}

// BFS runs breadth-first search on f starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil, core.NodeNotFound(start) if start is not live,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or any user-supplied hook error (wrapped).
func BFS[T any, W any](f *csr.Frozen[T, W], start int, opts ...Option) (*Result, error) {
	if f == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !f.Contains(start) {
		return nil, core.NodeNotFound(start)
	}

	w := newWalker(f, o, Unreached)
	w.enqueue(start, 0, Unreached)

	return w.res, w.loop()
}

// ShortestPath returns the fewest-edge path start→stop, both inclusive.
// Ties are broken by CSR enumeration order: the first discovery of a node fixes
// its predecessor. ok is false if stop is unreachable; start == stop yields [start].
//
// Errors:
//   - ErrGraphNil if f is nil.
//   - core.NodeNotFound naming start, then stop, if either is not live.
//
// Complexity: O(V + E) worst case; stops as soon as stop is discovered.
func ShortestPath[T any, W any](f *csr.Frozen[T, W], start, stop int) ([]int, bool, error) {
	res, err := search(f, start, stop)
	if err != nil {
		return nil, false, err
	}
	path, ok := res.PathTo(stop)

	return path, ok, nil
}

// ShortestPathLen returns the number of nodes on a shortest start→stop path
// (1 when start == stop). ok is false if stop is unreachable.
// Errors as ShortestPath.
func ShortestPathLen[T any, W any](f *csr.Frozen[T, W], start, stop int) (int, bool, error) {
	res, err := search(f, start, stop)
	if err != nil {
		return 0, false, err
	}
	if !res.Reached(stop) {
		return 0, false, nil
	}

	return res.Depth[stop] + 1, true, nil
}

// Reachable reports whether a directed path start→stop exists.
// Defined as ShortestPathLen succeeding; errors as ShortestPath.
func Reachable[T any, W any](f *csr.Frozen[T, W], start, stop int) (bool, error) {
	_, ok, err := ShortestPathLen(f, start, stop)

	return ok, err
}

// search validates both endpoints and runs an early-exit BFS toward stop.
func search[T any, W any](f *csr.Frozen[T, W], start, stop int) (*Result, error) {
	if f == nil {
		return nil, ErrGraphNil
	}
	if !f.Contains(start) {
		return nil, core.NodeNotFound(start)
	}
	if !f.Contains(stop) {
		return nil, core.NodeNotFound(stop)
	}
	w := newWalker(f, DefaultOptions(), stop)
	w.enqueue(start, 0, Unreached)
	// The default context never cancels and default hooks never fail.
	_ = w.loop()

	return w.res, nil
}

// newWalker allocates per-slot result arrays filled with Unreached.
func newWalker[T any, W any](f *csr.Frozen[T, W], o Options, stop int) *walker[T, W] {
	n := f.SlotCount()
	res := &Result{
		Order:  make([]int, 0, f.NodeCount()),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := range res.Depth {
		res.Depth[i] = Unreached
		res.Parent[i] = Unreached
	}

	return &walker[T, W]{
		graph: f,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, f.NodeCount()),
		stop:  stop,
		res:   res,
	}
}

// enqueue marks id discovered at depth d, records its parent,
// calls OnEnqueue, and appends it to the queue.
func (w *walker[T, W]) enqueue(id, d, parent int) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
	if id == w.stop {
		w.done = true
	}
}

// loop processes the queue until empty, early exit, error, or cancellation.
func (w *walker[T, W]) loop() error {
	for w.head < len(w.queue) && !w.done {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the front item, invokes OnDequeue, and returns it.
func (w *walker[T, W]) dequeue() queueItem {
	item := w.queue[w.head]
	w.head++
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker[T, W]) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors scans item's CSR row, applies filtering and MaxDepth,
// and enqueues each undiscovered neighbor.
func (w *walker[T, W]) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	targets, _ := w.graph.Out(item.id)
	for _, nbr := range targets {
		if w.res.Depth[nbr] != Unreached {
			continue
		}
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.id)
		if w.done {
			return
		}
	}
}
