// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on frozen weighted graphs.
//
// Options:
//
//	– MaxPops: optional cap on priority-queue pops; exceeding it aborts the run
//	           with ErrBudgetExceeded, bounding the work a single query may do.
//
// Errors (sentinel):
//
//	– ErrGraphNil        if the provided graph pointer is nil.
//	– ErrOptionViolation if MaxPops < 0.
//	– ErrBudgetExceeded  if the run needed more than MaxPops pops.
//	– core.ErrNodeNotFound if an endpoint is not a live node.
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dualgraph/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrGraphNil indicates that a nil *csr.Frozen was passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrBudgetExceeded indicates the MaxPops budget ran out before the search finished.
	ErrBudgetExceeded = errors.New("dijkstra: pop budget exceeded")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxPops – upper bound on priority-queue pops, stale entries included.
//
//	0 (default) means unbounded.
type Options struct {
	MaxPops int

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with no pop budget.
func DefaultOptions() Options {
	return Options{MaxPops: 0}
}

// WithMaxPops bounds the number of priority-queue pops.
//
//	n > 0: abort with ErrBudgetExceeded after n pops
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxPops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPops cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPops = n
	}
}

// Result is the single-source outcome, indexed by slot handle.
//
//   - Dist[v]    – shortest distance Source→v; meaningful only if Reached[v].
//   - Reached[v] – whether v is reachable from Source.
//   - Prev[v]    – predecessor of v on the shortest path, -1 for Source and unreached slots.
type Result[W core.Weight] struct {
	Source  int
	Dist    []W
	Reached []bool
	Prev    []int
}

// PathTo reconstructs Source→dest and its total cost. ok is false if dest was not reached.
func (r *Result[W]) PathTo(dest int) (path []int, cost W, ok bool) {
	if dest < 0 || dest >= len(r.Reached) || !r.Reached[dest] {
		return nil, cost, false
	}
	for cur := dest; cur != -1; cur = r.Prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, r.Dist[dest], true
}
