// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: The closed error taxonomy shared by every package of the engine.
// Policy:
//   - Every failure is a *GraphError value; nothing in the engine panics on
//     well-typed but semantically invalid input.
//   - Sentinels match by Kind via errors.Is; errors.As recovers the indices.
//   - "No answer" (unreachable, cyclic) is never an error; it is an ok=false result.

package core

import (
	"errors"
	"fmt"
)

// ErrorKind enumerates the closed set of engine failures.
type ErrorKind int

const (
	// KindNodeNotFound: an index does not name a live node.
	KindNodeNotFound ErrorKind = iota + 1

	// KindEdgeNotFound: no edge From→To exists.
	KindEdgeNotFound

	// KindAlreadyFrozen: a structural mutation (or a second freeze) was attempted on a frozen graph.
	KindAlreadyFrozen

	// KindGraphNotFrozen: an algorithm (or thaw) was invoked while the graph is still dynamic.
	KindGraphNotFrozen

	// KindIndexOutOfBounds: a raw slot access fell outside [0, N).
	KindIndexOutOfBounds
)

// String returns the short name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindNodeNotFound:
		return "node not found"
	case KindEdgeNotFound:
		return "edge not found"
	case KindAlreadyFrozen:
		return "graph already frozen"
	case KindGraphNotFrozen:
		return "graph not frozen"
	case KindIndexOutOfBounds:
		return "index out of bounds"
	default:
		return "unknown"
	}
}

// GraphError is the single error type produced by the engine.
//
// Node is meaningful for KindNodeNotFound and KindIndexOutOfBounds,
// From/To for KindEdgeNotFound. Unused fields are zero.
type GraphError struct {
	Kind ErrorKind
	Node int
	From int
	To   int

	// sentinel marks the package-level values below; their messages carry no indices.
	sentinel bool
}

// Error implements error.
func (e *GraphError) Error() string {
	if e.sentinel {
		return "core: " + e.Kind.String()
	}
	switch e.Kind {
	case KindNodeNotFound, KindIndexOutOfBounds:
		return fmt.Sprintf("core: %s: %d", e.Kind, e.Node)
	case KindEdgeNotFound:
		return fmt.Sprintf("core: %s: %d→%d", e.Kind, e.From, e.To)
	default:
		return "core: " + e.Kind.String()
	}
}

// Is reports whether target is a *GraphError of the same Kind.
// This lets callers write errors.Is(err, core.ErrNodeNotFound) for any index.
func (e *GraphError) Is(target error) bool {
	var t *GraphError
	if !errors.As(target, &t) {
		return false
	}

	return t.Kind == e.Kind
}

// Sentinel errors, one per kind. Compare with errors.Is.
var (
	// ErrNodeNotFound matches every KindNodeNotFound error.
	ErrNodeNotFound error = &GraphError{Kind: KindNodeNotFound, sentinel: true}

	// ErrEdgeNotFound matches every KindEdgeNotFound error.
	ErrEdgeNotFound error = &GraphError{Kind: KindEdgeNotFound, sentinel: true}

	// ErrAlreadyFrozen matches every KindAlreadyFrozen error.
	ErrAlreadyFrozen error = &GraphError{Kind: KindAlreadyFrozen, sentinel: true}

	// ErrGraphNotFrozen matches every KindGraphNotFrozen error.
	ErrGraphNotFrozen error = &GraphError{Kind: KindGraphNotFrozen, sentinel: true}

	// ErrIndexOutOfBounds matches every KindIndexOutOfBounds error.
	ErrIndexOutOfBounds error = &GraphError{Kind: KindIndexOutOfBounds, sentinel: true}
)

// NodeNotFound builds a KindNodeNotFound error for idx.
func NodeNotFound(idx int) error {
	return &GraphError{Kind: KindNodeNotFound, Node: idx}
}

// EdgeNotFound builds a KindEdgeNotFound error for from→to.
func EdgeNotFound(from, to int) error {
	return &GraphError{Kind: KindEdgeNotFound, From: from, To: to}
}

// IndexOutOfBounds builds a KindIndexOutOfBounds error for idx.
func IndexOutOfBounds(idx int) error {
	return &GraphError{Kind: KindIndexOutOfBounds, Node: idx}
}

// KindOf returns the Kind of err if it is (or wraps) a *GraphError, and 0 otherwise.
func KindOf(err error) ErrorKind {
	var ge *GraphError
	if errors.As(err, &ge) {
		return ge.Kind
	}

	return 0
}
