// SPDX-License-Identifier: MIT
//
// File: frozen.go
// Role: The immutable CSR graph and its O(1)/O(degree) read surface.
// Policy:
//   - No method mutates a Frozen value after Freeze/Transpose returns it.
//   - Raw array accessors return views, never copies; callers must not write to them.
// Concurrency:
//   - Safe for any number of concurrent readers.

package csr

import "github.com/katalvlaran/dualgraph/core"

// Frozen is a Compressed-Sparse-Row snapshot of a Dynamic graph.
//
// For slot i, targets[offsets[i]:offsets[i+1]] and the matching weights range
// hold i's outgoing edges in the adjacency order they had at freeze time.
// Tombstoned slots keep an empty range and a cleared liveness bit.
type Frozen[T any, W any] struct {
	offsets  []int  // len N+1, non-decreasing, offsets[0]==0, offsets[N]==len(targets)
	targets  []int  // len E, every value a live slot < N
	weights  []W    // len E, parallel to targets
	payloads []T    // len N, zero for tombstones
	live     bitmap // liveness per slot
	nodes    int    // number of live slots
}

// SlotCount returns N, the number of node slots including tombstones.
func (f *Frozen[T, W]) SlotCount() int { return len(f.offsets) - 1 }

// NodeCount returns the number of live nodes.
func (f *Frozen[T, W]) NodeCount() int { return f.nodes }

// EdgeCount returns the number of edges.
func (f *Frozen[T, W]) EdgeCount() int { return len(f.targets) }

// Contains reports whether idx is a live node. Any other idx ⇒ false.
// Complexity: O(1).
func (f *Frozen[T, W]) Contains(idx int) bool {
	return idx >= 0 && idx < f.SlotCount() && f.live.test(idx)
}

// check classifies idx: IndexOutOfBounds outside [0,N), NodeNotFound for tombstones.
func (f *Frozen[T, W]) check(idx int) error {
	if idx < 0 || idx >= f.SlotCount() {
		return core.IndexOutOfBounds(idx)
	}
	if !f.live.test(idx) {
		return core.NodeNotFound(idx)
	}

	return nil
}

// Payload returns the payload of a live node.
//
// Errors:
//   - IndexOutOfBounds(idx) if idx ∉ [0, SlotCount()).
//   - NodeNotFound(idx) if idx is a tombstone.
func (f *Frozen[T, W]) Payload(idx int) (T, error) {
	if err := f.check(idx); err != nil {
		var zero T
		return zero, err
	}

	return f.payloads[idx], nil
}

// Neighbors returns idx's outgoing (target, weight) pairs, zipped into a fresh slice.
//
// Errors:
//   - IndexOutOfBounds(idx) if idx ∉ [0, SlotCount()).
//   - NodeNotFound(idx) if idx is a tombstone.
//
// Complexity: O(outdeg(idx)).
func (f *Frozen[T, W]) Neighbors(idx int) ([]core.Arc[W], error) {
	if err := f.check(idx); err != nil {
		return nil, err
	}
	lo, hi := f.offsets[idx], f.offsets[idx+1]
	out := make([]core.Arc[W], hi-lo)
	for k := lo; k < hi; k++ {
		out[k-lo] = core.Arc[W]{To: f.targets[k], Weight: f.weights[k]}
	}

	return out, nil
}

// Out returns zero-copy views of idx's target and weight ranges.
// Invalid or tombstoned idx yields two empty slices; this is the hot-loop accessor
// used by the algorithm packages after they have validated their inputs.
//
// Complexity: O(1).
func (f *Frozen[T, W]) Out(idx int) ([]int, []W) {
	if idx < 0 || idx >= f.SlotCount() {
		return nil, nil
	}
	lo, hi := f.offsets[idx], f.offsets[idx+1]

	return f.targets[lo:hi:hi], f.weights[lo:hi:hi]
}

// OutDegree returns the number of edges leaving a live node.
// Errors as Neighbors. Complexity: O(1).
func (f *Frozen[T, W]) OutDegree(idx int) (int, error) {
	if err := f.check(idx); err != nil {
		return 0, err
	}

	return f.offsets[idx+1] - f.offsets[idx], nil
}

// InDegrees returns the in-degree of every slot (tombstones report 0).
// Complexity: O(V + E).
func (f *Frozen[T, W]) InDegrees() []int {
	in := make([]int, f.SlotCount())
	for _, v := range f.targets {
		in[v]++
	}

	return in
}

// Nodes returns the live handles in ascending order.
func (f *Frozen[T, W]) Nodes() []int {
	out := make([]int, 0, f.nodes)
	for i, n := 0, f.SlotCount(); i < n; i++ {
		if f.live.test(i) {
			out = append(out, i)
		}
	}

	return out
}

// Edges returns every edge by source ascending, then CSR order.
// Complexity: O(V + E).
func (f *Frozen[T, W]) Edges() []core.Edge[W] {
	out := make([]core.Edge[W], 0, len(f.targets))
	for i, n := 0, f.SlotCount(); i < n; i++ {
		for k := f.offsets[i]; k < f.offsets[i+1]; k++ {
			out = append(out, core.Edge[W]{From: i, To: f.targets[k], Weight: f.weights[k]})
		}
	}

	return out
}

// Offsets returns the raw offsets array (len N+1). Read-only.
func (f *Frozen[T, W]) Offsets() []int { return f.offsets }

// Targets returns the raw targets array (len E). Read-only.
func (f *Frozen[T, W]) Targets() []int { return f.targets }

// Weights returns the raw weights array (len E). Read-only.
func (f *Frozen[T, W]) Weights() []W { return f.weights }
