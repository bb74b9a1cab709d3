// SPDX-License-Identifier: MIT
//
// File: freeze.go
// Role: Dynamic ⇄ Frozen conversion plus derived CSR builders (Transpose).
// Determinism:
//   - Freeze preserves every node's adjacency order; Thaw(Freeze(d)) reproduces d exactly.
// Complexity:
//   - Freeze, Thaw, Transpose: O(V + E) time and memory.

package csr

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dualgraph/core"
)

// ErrInvalidLayout is wrapped by Validate when a CSR invariant does not hold.
var ErrInvalidLayout = errors.New("csr: invalid layout")

// Freeze compiles d into a Frozen graph. d is only read; the caller keeps ownership.
// A nil d yields an empty Frozen graph.
//
// Implementation:
//   - Stage 1: count out-degrees per slot.
//   - Stage 2: exclusive prefix sum into offsets.
//   - Stage 3: fill targets/weights in adjacency order; copy payloads and liveness.
func Freeze[T any, W any](d *core.Dynamic[T, W]) *Frozen[T, W] {
	if d == nil {
		return &Frozen[T, W]{offsets: []int{0}}
	}
	n := d.SlotCount()

	// Stage 1 + 2: offsets[i+1] = offsets[i] + outdeg(i).
	offsets := make([]int, n+1)
	for i := 0; i < n; i++ {
		offsets[i+1] = offsets[i] + len(d.Adjacency(i))
	}

	// Stage 3: fill.
	m := offsets[n]
	f := &Frozen[T, W]{
		offsets:  offsets,
		targets:  make([]int, m),
		weights:  make([]W, m),
		payloads: make([]T, n),
		live:     newBitmap(n),
	}
	for i := 0; i < n; i++ {
		if p, ok := d.Slot(i); ok {
			f.payloads[i] = p
			f.live.set(i)
		}
		k := offsets[i]
		for _, a := range d.Adjacency(i) {
			f.targets[k] = a.To
			f.weights[k] = a.Weight
			k++
		}
	}
	f.nodes = f.live.count()

	return f
}

// Thaw rebuilds a Dynamic graph equal to the one f was frozen from:
// same slot count, same tombstones, same payloads, same adjacency order.
// f itself is left untouched.
func Thaw[T any, W any](f *Frozen[T, W]) *core.Dynamic[T, W] {
	n := f.SlotCount()
	d := core.NewDynamic[T, W](core.WithNodeCapacity(n))
	for i := 0; i < n; i++ {
		d.AddNode(f.payloads[i])
	}
	// Tombstones go before edges: a dead slot never carries arcs.
	for i := 0; i < n; i++ {
		if !f.live.test(i) {
			_ = d.RemoveNode(i)
		}
	}
	// Endpoints are live by the CSR invariant, so AddEdge cannot fail here.
	for i := 0; i < n; i++ {
		for k := f.offsets[i]; k < f.offsets[i+1]; k++ {
			_ = d.AddEdge(i, f.targets[k], f.weights[k])
		}
	}

	return d
}

// Transpose returns the reverse graph: every edge u→v becomes v→u with the same weight.
// Slots, tombstones and payloads are shared by value. Row order for each target
// follows the source-ascending scan of f, so Transpose is deterministic.
func (f *Frozen[T, W]) Transpose() *Frozen[T, W] {
	n := f.SlotCount()
	m := len(f.targets)

	offsets := make([]int, n+1)
	for _, v := range f.targets {
		offsets[v+1]++
	}
	for i := 0; i < n; i++ {
		offsets[i+1] += offsets[i]
	}

	t := &Frozen[T, W]{
		offsets:  offsets,
		targets:  make([]int, m),
		weights:  make([]W, m),
		payloads: append([]T(nil), f.payloads...),
		live:     append(bitmap(nil), f.live...),
		nodes:    f.nodes,
	}
	cursor := append([]int(nil), offsets[:n]...)
	for u := 0; u < n; u++ {
		for k := f.offsets[u]; k < f.offsets[u+1]; k++ {
			v := f.targets[k]
			t.targets[cursor[v]] = u
			t.weights[cursor[v]] = f.weights[k]
			cursor[v]++
		}
	}

	return t
}

// Validate checks the CSR invariants and returns an error wrapping ErrInvalidLayout
// on the first violation, or nil. Values produced by this package always validate;
// Validate exists for tests and for callers that assemble layouts by hand.
func (f *Frozen[T, W]) Validate() error {
	if len(f.offsets) == 0 {
		return fmt.Errorf("%w: empty offsets", ErrInvalidLayout)
	}
	n := f.SlotCount()
	if f.offsets[0] != 0 {
		return fmt.Errorf("%w: offsets[0]=%d", ErrInvalidLayout, f.offsets[0])
	}
	if f.offsets[n] != len(f.targets) {
		return fmt.Errorf("%w: offsets[%d]=%d, len(targets)=%d", ErrInvalidLayout, n, f.offsets[n], len(f.targets))
	}
	if len(f.weights) != len(f.targets) {
		return fmt.Errorf("%w: len(weights)=%d, len(targets)=%d", ErrInvalidLayout, len(f.weights), len(f.targets))
	}
	if len(f.payloads) != n || len(f.live) != (n+63)>>6 {
		return fmt.Errorf("%w: slot arrays do not match %d slots", ErrInvalidLayout, n)
	}
	for i := 0; i < n; i++ {
		if f.offsets[i] > f.offsets[i+1] {
			return fmt.Errorf("%w: offsets decrease at %d", ErrInvalidLayout, i)
		}
		if !f.live.test(i) && f.offsets[i] != f.offsets[i+1] {
			return fmt.Errorf("%w: tombstone %d has edges", ErrInvalidLayout, i)
		}
	}
	for k, v := range f.targets {
		if v < 0 || v >= n || !f.live.test(v) {
			return fmt.Errorf("%w: targets[%d]=%d is not a live slot", ErrInvalidLayout, k, v)
		}
	}
	if c := f.live.count(); c != f.nodes {
		return fmt.Errorf("%w: %d live bits, %d recorded", ErrInvalidLayout, c, f.nodes)
	}

	return nil
}
