// Package dfs provides topological sort on directed csr.Frozen graphs.
//
// TopologicalSort computes a linear ordering of live nodes such that for
// every edge u→v, u appears before v. If the graph contains a cycle,
// ok is false and no order is returned.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs

import (
	"context"
	"slices"

	"github.com/katalvlaran/dualgraph/csr"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// TopologicalSort returns the live nodes of f in reverse DFS finish order.
// Roots are taken in ascending handle order and successors in CSR order, so the
// result is deterministic for a fixed snapshot.
// ok is false iff f has a cycle (self-loops included).
// Errors: ErrGraphNil, or ctx.Err() when cancelled via WithCancelContext.
func TopologicalSort[T any, W any](f *csr.Frozen[T, W], options ...TopoOption) ([]int, bool, error) {
	if f == nil {
		return nil, false, ErrGraphNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	order := make([]int, 0, f.NodeCount())
	w := newColorWalker(opts.ctx, f)
	w.onBack = func(_, _ int) bool { return false }
	w.onFinish = func(u int) { order = append(order, u) }

	cyclic, err := w.run()
	if err != nil {
		return nil, false, err
	}
	if cyclic {
		return nil, false, nil
	}
	slices.Reverse(order)

	return order, true, nil
}
