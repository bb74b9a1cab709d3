// SPDX-License-Identifier: MIT
//
// File: store.go
// Role: Node Store, the dense slot array owning node payloads.
// Determinism:
//   - Handles are assigned 0,1,2,... in insertion order and never reused.
//   - Indices() returns live handles ascending.

package core

// slot is one node record; a removed slot keeps its position as a tombstone.
type slot[T any] struct {
	payload T
	live    bool
}

// NodeStore holds node payloads indexed by a dense int handle.
// It owns payload lifetime: Remove drops the payload reference immediately
// while keeping the slot so that surviving handles stay stable.
//
// NodeStore is not safe for concurrent mutation.
type NodeStore[T any] struct {
	slots []slot[T]
	live  int
}

// NewNodeStore returns an empty store with room for capacity slots.
func NewNodeStore[T any](capacity int) *NodeStore[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &NodeStore[T]{slots: make([]slot[T], 0, capacity)}
}

// Add appends payload in a new slot and returns its handle. O(1) amortized.
func (s *NodeStore[T]) Add(payload T) int {
	s.slots = append(s.slots, slot[T]{payload: payload, live: true})
	s.live++

	return len(s.slots) - 1
}

// Contains reports whether idx names a live slot. Out-of-range idx ⇒ false.
func (s *NodeStore[T]) Contains(idx int) bool {
	return idx >= 0 && idx < len(s.slots) && s.slots[idx].live
}

// Get returns the payload at idx.
// Errors: IndexOutOfBounds if idx ∉ [0, Len()); NodeNotFound if idx is a tombstone.
func (s *NodeStore[T]) Get(idx int) (T, error) {
	var zero T
	if idx < 0 || idx >= len(s.slots) {
		return zero, IndexOutOfBounds(idx)
	}
	if !s.slots[idx].live {
		return zero, NodeNotFound(idx)
	}

	return s.slots[idx].payload, nil
}

// Set replaces the payload at a live idx. Errors as Get.
func (s *NodeStore[T]) Set(idx int, payload T) error {
	if idx < 0 || idx >= len(s.slots) {
		return IndexOutOfBounds(idx)
	}
	if !s.slots[idx].live {
		return NodeNotFound(idx)
	}
	s.slots[idx].payload = payload

	return nil
}

// Remove tombstones idx and releases its payload. Errors as Get.
func (s *NodeStore[T]) Remove(idx int) error {
	if idx < 0 || idx >= len(s.slots) {
		return IndexOutOfBounds(idx)
	}
	if !s.slots[idx].live {
		return NodeNotFound(idx)
	}
	var zero T
	s.slots[idx] = slot[T]{payload: zero, live: false}
	s.live--

	return nil
}

// Len returns the number of slots, live or tombstoned.
func (s *NodeStore[T]) Len() int { return len(s.slots) }

// Live returns the number of live slots.
func (s *NodeStore[T]) Live() int { return s.live }

// Indices returns the live handles in ascending order.
func (s *NodeStore[T]) Indices() []int {
	out := make([]int, 0, s.live)
	for i := range s.slots {
		if s.slots[i].live {
			out = append(out, i)
		}
	}

	return out
}

// Slot returns the payload and liveness of slot idx without error reporting.
// A tombstone or out-of-range idx yields the zero payload and false.
func (s *NodeStore[T]) Slot(idx int) (T, bool) {
	if idx < 0 || idx >= len(s.slots) {
		var zero T
		return zero, false
	}

	return s.slots[idx].payload, s.slots[idx].live
}

// clone returns an independent copy; payload values are copied shallowly.
func (s *NodeStore[T]) clone() *NodeStore[T] {
	out := &NodeStore[T]{slots: make([]slot[T], len(s.slots)), live: s.live}
	copy(out.slots, s.slots)

	return out
}
