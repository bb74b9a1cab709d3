// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor filtering,
// full-graph (forest) traversal, and basic diagnostics.
package dfs

import (
	"context"
	"errors"
)

// Visitation state of a node.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the current DFS path.
	Black        // Black: the node and all its descendants have been fully explored.
)

// Unvisited marks Depth/Parent entries of slots the traversal never reached.
const Unvisited = -1

var (
	// ErrGraphNil is returned when a nil *csr.Frozen is passed to DFS,
	// TopologicalSort, FindCycle or DetectCycles.
	ErrGraphNil = errors.New("dfs: graph is nil")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(f, start, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a node (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id int) error

	// OnExit, if non-nil, is invoked after all descendants of a node
	// have been explored (post-order), before appending to Result.Order.
	OnExit func(id int) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each edge curr→neighbor before recursing.
	// Return false to skip it.
	FilterNeighbor func(curr, neighbor int) bool

	// FullTraversal, if true, runs DFS from every unvisited live node in ascending
	// handle order, covering disconnected components. Default is false.
	FullTraversal bool
}

// DefaultOptions returns Options with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id int) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit. Negative means unlimited.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips edges for which fn returns false; they are counted
// in Result.SkippedNeighbors.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal enables forest traversal over every live node.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal. Slices are indexed by
// slot handle and sized to the graph's SlotCount.
type Result struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []int

	// Depth is each node's tree depth from its root, Unvisited if never reached.
	Depth []int

	// Parent is the node each node was first discovered from; Unvisited for roots.
	Parent []int

	// Visited flags which slots were reached.
	Visited []bool

	// SkippedNeighbors reports how many edges FilterNeighbor rejected.
	SkippedNeighbors int
}
