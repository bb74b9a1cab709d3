// Package dfs implements cycle detection for directed csr.Frozen graphs.
//
// FindCycle and HasCycle stop at the first back edge. DetectCycles enumerates
// every cycle closed by a back edge of the DFS forest, produces the canonical
// minimal rotation of each via Booth's algorithm in O(L) time, deduplicates, and
// sorts the list for deterministic output.
//
// Complexity:
//
//   - FindCycle:    Time O(V + E), Memory O(V)
//   - DetectCycles: Time O(V + E + C·L), Memory O(V + C·L)  (C=#cycles, L=avg length)
package dfs

import (
	"context"
	"slices"

	"github.com/katalvlaran/dualgraph/csr"
)

// FindCycle returns one directed cycle, closed: [v0, v1, …, vk, v0].
// A self-loop on v is reported as [v, v]. ok is false iff f is acyclic.
// The cycle found is the first back edge met by a DFS with roots in ascending
// order and successors in CSR order.
func FindCycle[T any, W any](f *csr.Frozen[T, W]) ([]int, bool, error) {
	if f == nil {
		return nil, false, ErrGraphNil
	}
	var cycle []int
	w := newColorWalker(context.Background(), f)
	w.onBack = func(u, v int) bool {
		cycle = append(w.path(v), v)
		return false
	}
	found, err := w.run()
	if err != nil || !found {
		return nil, false, err
	}

	return cycle, true, nil
}

// HasCycle reports whether f contains a directed cycle (self-loops included).
func HasCycle[T any, W any](f *csr.Frozen[T, W]) (bool, error) {
	_, ok, err := FindCycle(f)

	return ok, err
}

// DetectCycles returns every distinct cycle closed by a DFS back edge.
// Each cycle is closed ([v0 … v0]) and rotated so v0 is its smallest handle;
// the list is sorted lexicographically. Returns (false, nil, nil) if acyclic.
//
// The enumeration is not exhaustive over all simple cycles: cycles that only
// arise through cross or forward edges are not listed. Use it for diagnostics,
// not for counting.
func DetectCycles[T any, W any](f *csr.Frozen[T, W]) (bool, [][]int, error) {
	if f == nil {
		return false, nil, ErrGraphNil
	}
	seen := make(map[string]struct{})
	var cycles [][]int
	w := newColorWalker(context.Background(), f)
	w.onBack = func(u, v int) bool {
		sig, canon := canonical(w.path(v))
		if _, dup := seen[sig]; !dup {
			seen[sig] = struct{}{}
			cycles = append(cycles, canon)
		}
		return true
	}
	if _, err := w.run(); err != nil {
		return false, nil, err
	}
	if len(cycles) == 0 {
		return false, nil, nil
	}
	slices.SortFunc(cycles, slices.Compare[[]int])

	return true, cycles, nil
}

// canonical rotates an open cycle to its minimal rotation and closes it.
// Directed cycles are not reversed: u→v→u and its mirror are the same loop,
// but a→b→c and a→c→b are different cycles.
func canonical(open []int) (string, []int) {
	rot := MinimalRotation(open)
	closed := append(rot, rot[0])

	return JoinSig(closed), closed
}
