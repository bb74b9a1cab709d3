// Package dfs implements depth-first search (single-source and forest) on csr.Frozen.
//
// Key features:
//   - DFS(f, start, opts...): traverse from a root or full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//
// Errors:
//
//   - ErrGraphNil               if f is nil.
//   - core.ErrNodeNotFound      if start is not a live node (single-source mode).
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit (wrapped).
package dfs

import (
	"fmt"

	"github.com/katalvlaran/dualgraph/core"
	"github.com/katalvlaran/dualgraph/csr"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker[T any, W any] struct {
	graph *csr.Frozen[T, W] // underlying graph
	opts  Options           // traversal options
	res   *Result           // result collector
}

// DFS performs depth-first search on f. If opts include WithFullTraversal,
// it covers all disconnected components and start is ignored; otherwise,
// it starts only from start.
// Returns the Result (partial on abort) together with any error.
func DFS[T any, W any](f *csr.Frozen[T, W], start int, opts ...Option) (*Result, error) {
	if f == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal && !f.Contains(start) {
		return nil, core.NodeNotFound(start)
	}

	n := f.SlotCount()
	res := &Result{
		Order:   make([]int, 0, f.NodeCount()),
		Depth:   make([]int, n),
		Parent:  make([]int, n),
		Visited: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = Unvisited
		res.Parent[i] = Unvisited
	}
	w := &dfsWalker[T, W]{graph: f, opts: o, res: res}

	if !o.FullTraversal {
		return res, w.traverse(start, Unvisited, 0)
	}
	for _, v := range f.Nodes() {
		if !res.Visited[v] {
			if err := w.traverse(v, Unvisited, 0); err != nil {
				return res, err
			}
		}
	}

	return res, nil
}

// traverse visits id at the given depth, recursing into its CSR row.
func (w *dfsWalker[T, W]) traverse(id, parent, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Parent[id] = parent

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	targets, _ := w.graph.Out(id)
	for _, nid := range targets {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(id, nid) {
			w.res.SkippedNeighbors++
			continue
		}
		if !w.res.Visited[nid] {
			if err := w.traverse(nid, id, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
