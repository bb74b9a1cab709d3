// SPDX-License-Identifier: MIT
//
// File: walk.go
// Role: Iterative three-color DFS driver shared by cycle detection and topological sort.
// Determinism:
//   - Roots are taken in ascending handle order; successors in CSR order.
// Policy:
//   - An explicit frame stack replaces recursion, so path length is bounded by memory,
//     not by goroutine stack growth.

package dfs

import (
	"context"

	"github.com/katalvlaran/dualgraph/csr"
)

// frame is one entry of the explicit DFS stack: a Gray node and its next CSR cursor.
type frame struct {
	node int
	next int
}

// colorWalker drives a forest DFS and reports back edges and finish events.
type colorWalker[T any, W any] struct {
	graph *csr.Frozen[T, W]
	ctx   context.Context
	color []int
	stack []frame

	// onBack is called for every edge u→v with v Gray. Returning false stops the walk.
	onBack func(u, v int) bool
	// onFinish is called when u turns Black.
	onFinish func(u int)
}

func newColorWalker[T any, W any](ctx context.Context, f *csr.Frozen[T, W]) *colorWalker[T, W] {
	if ctx == nil {
		ctx = context.Background()
	}

	return &colorWalker[T, W]{
		graph: f,
		ctx:   ctx,
		color: make([]int, f.SlotCount()),
	}
}

// run walks every live White root. stopped is true if onBack asked to stop.
func (w *colorWalker[T, W]) run() (stopped bool, err error) {
	for root, n := 0, w.graph.SlotCount(); root < n; root++ {
		if w.color[root] != White || !w.graph.Contains(root) {
			continue
		}
		select {
		case <-w.ctx.Done():
			return false, w.ctx.Err()
		default:
		}
		if stopped, err = w.tree(root); stopped || err != nil {
			return stopped, err
		}
	}

	return false, nil
}

// tree explores everything reachable from root.
func (w *colorWalker[T, W]) tree(root int) (bool, error) {
	w.color[root] = Gray
	w.stack = append(w.stack[:0], frame{node: root})
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		targets, _ := w.graph.Out(top.node)
		if top.next == len(targets) {
			w.color[top.node] = Black
			if w.onFinish != nil {
				w.onFinish(top.node)
			}
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		v := targets[top.next]
		top.next++

		switch w.color[v] {
		case White:
			select {
			case <-w.ctx.Done():
				return false, w.ctx.Err()
			default:
			}
			w.color[v] = Gray
			w.stack = append(w.stack, frame{node: v})
		case Gray:
			if w.onBack != nil && !w.onBack(top.node, v) {
				return true, nil
			}
		}
	}

	return false, nil
}

// path returns the Gray nodes from v to the top of the stack, inclusive.
// v must be Gray.
func (w *colorWalker[T, W]) path(v int) []int {
	i := len(w.stack) - 1
	for w.stack[i].node != v {
		i--
	}
	out := make([]int, 0, len(w.stack)-i+1)
	for ; i < len(w.stack); i++ {
		out = append(out, w.stack[i].node)
	}

	return out
}
