// Package scc finds strongly connected components of a csr.Frozen graph with
// Tarjan's algorithm and builds the condensation DAG.
//
// An SCC is a maximal set of nodes such that every node reaches every other.
// Tarjan's algorithm is a single DFS pass using lowlink values to identify
// component roots, in O(V + E) time.
//
// Output order:
//   - Members of each component are sorted ascending.
//   - Components are listed in reverse topological order of the condensation:
//     if an edge runs from component i to component j (i != j), then j < i.
package scc

import (
	"context"
	"errors"
	"slices"

	"github.com/katalvlaran/dualgraph/csr"
)

// ErrGraphNil is returned when a nil *csr.Frozen is passed.
var ErrGraphNil = errors.New("scc: graph is nil")

// NoComponent marks tombstoned slots in Result.Component.
const NoComponent = -1

// Option configures a Tarjan run.
type Option func(*Options)

// Options holds Tarjan settings.
type Options struct {
	// Ctx allows cancellation; checked once per discovered node.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Result is the output of Tarjan.
type Result struct {
	// Components lists every SCC, members ascending, in reverse topological order.
	Components [][]int

	// Component maps each slot to its index in Components, NoComponent for tombstones.
	Component []int

	// Cyclic is true if any component has more than one node or a self-loop.
	Cyclic bool

	// Largest is the size of the largest component.
	Largest int
}

// tarjanState holds the algorithm state during execution.
type tarjanState[T any, W any] struct {
	graph     *csr.Frozen[T, W]
	ctx       context.Context
	index     int
	nodeIndex []int // discovery index, -1 if unvisited
	lowlink   []int
	onStack   []bool
	stack     []int
	res       *Result
	cancelled bool
}

// StronglyConnectedComponents returns the SCCs of f: members ascending,
// components in reverse topological order of the condensation.
func StronglyConnectedComponents[T any, W any](f *csr.Frozen[T, W]) ([][]int, error) {
	res, err := Tarjan(f)
	if err != nil {
		return nil, err
	}

	return res.Components, nil
}

// Tarjan runs Tarjan's algorithm over every live node of f, roots in ascending
// handle order and successors in CSR order.
// Errors: ErrGraphNil, or ctx.Err() if cancelled (no partial result is returned).
func Tarjan[T any, W any](f *csr.Frozen[T, W], opts ...Option) (*Result, error) {
	if f == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := f.SlotCount()
	state := &tarjanState[T, W]{
		graph:     f,
		ctx:       o.Ctx,
		nodeIndex: make([]int, n),
		lowlink:   make([]int, n),
		onStack:   make([]bool, n),
		stack:     make([]int, 0, n),
		res:       &Result{Component: make([]int, n)},
	}
	for i := 0; i < n; i++ {
		state.nodeIndex[i] = -1
		state.res.Component[i] = NoComponent
	}

	for v := 0; v < n; v++ {
		if !f.Contains(v) || state.nodeIndex[v] != -1 {
			continue
		}
		state.strongConnect(v)
		if state.cancelled {
			return nil, o.Ctx.Err()
		}
	}

	return state.res, nil
}

// strongConnect is the recursive DFS function.
func (s *tarjanState[T, W]) strongConnect(v int) {
	select {
	case <-s.ctx.Done():
		s.cancelled = true
		return
	default:
	}

	s.nodeIndex[v] = s.index
	s.lowlink[v] = s.index
	s.index++
	s.stack = append(s.stack, v)
	s.onStack[v] = true

	targets, _ := s.graph.Out(v)
	selfLoop := false
	for _, w := range targets {
		switch {
		case w == v:
			selfLoop = true
		case s.nodeIndex[w] == -1:
			s.strongConnect(w)
			if s.cancelled {
				return
			}
			s.lowlink[v] = min(s.lowlink[v], s.lowlink[w])
		case s.onStack[w]:
			s.lowlink[v] = min(s.lowlink[v], s.nodeIndex[w])
		}
	}

	// v is a root node: pop the stack and emit a component.
	if s.lowlink[v] != s.nodeIndex[v] {
		return
	}
	id := len(s.res.Components)
	var comp []int
	for {
		w := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		s.onStack[w] = false
		s.res.Component[w] = id
		comp = append(comp, w)
		if w == v {
			break
		}
	}
	slices.Sort(comp)
	s.res.Components = append(s.res.Components, comp)
	s.res.Largest = max(s.res.Largest, len(comp))
	if len(comp) > 1 || selfLoop {
		s.res.Cyclic = true
	}
}
