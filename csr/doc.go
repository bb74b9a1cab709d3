// SPDX-License-Identifier: MIT

// Package csr provides Frozen, the immutable Compressed-Sparse-Row form of a
// core.Dynamic graph, together with Freeze and Thaw.
//
// Layout for N slots and E edges:
//
//	offsets  [N+1]int  offsets[0]=0, non-decreasing, offsets[N]=E
//	targets  [E]int    edges of slot i live in targets[offsets[i]:offsets[i+1]]
//	weights  [E]W      parallel to targets
//	payloads [N]T      zero value for tombstones
//	live     bitmap    one bit per slot
//
// Handles are shared with the Dynamic graph: slot i in Frozen is slot i in the
// Dynamic graph it came from, tombstones included. Adjacency order is preserved,
// so Thaw(Freeze(d)) is indistinguishable from d.
//
// A Frozen value is never mutated after construction and is safe for
// concurrent readers without locking.
package csr
