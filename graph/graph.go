// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Graph container: Dynamic/Frozen tagged union, state guards, transitions and
//       state-independent reads.
// Policy:
//   - Exactly one of dyn/frz is non-nil at any time.
//   - Structural mutations require StateDynamic (else core.ErrAlreadyFrozen).
//   - Algorithms require StateFrozen (else core.ErrGraphNotFrozen).
// Concurrency:
//   - A Graph is not safe for concurrent use. Share Snapshot() across goroutines instead.

package graph

import (
	"slices"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/dualgraph/core"
	"github.com/katalvlaran/dualgraph/csr"
)

// Graph holds a directed graph in one of two representations: a mutable
// adjacency list while building, an immutable CSR snapshot while querying.
type Graph[T any, W any] struct {
	state   State
	dyn     *core.Dynamic[T, W]
	frz     *csr.Frozen[T, W]
	log     *logrus.Logger
	metrics *metrics
}

// New returns an empty Graph in StateDynamic.
func New[T any, W any](opts ...Option) *Graph[T, W] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[T, W]{
		state:   StateDynamic,
		dyn:     core.NewDynamic[T, W](core.WithNodeCapacity(cfg.nodeCapacity)),
		log:     cfg.logger,
		metrics: newMetrics(cfg.provider, cfg.logger),
	}
}

// State returns the current lifecycle state.
func (g *Graph[T, W]) State() State { return g.state }

// IsFrozen reports whether the graph is in StateFrozen.
func (g *Graph[T, W]) IsFrozen() bool { return g.state == StateFrozen }

// reject logs and counts a call refused by a state guard, then returns err.
func (g *Graph[T, W]) reject(op string, err error) error {
	g.metrics.recordRejection(op)
	g.log.WithFields(logrus.Fields{
		"op":    op,
		"state": g.state.String(),
	}).Debug("graph: call rejected")

	return err
}

// mutable returns the Dynamic graph, or AlreadyFrozen.
func (g *Graph[T, W]) mutable(op string) (*core.Dynamic[T, W], error) {
	if g.state != StateDynamic {
		return nil, g.reject(op, core.ErrAlreadyFrozen)
	}

	return g.dyn, nil
}

// frozen returns the Frozen graph, or GraphNotFrozen.
func (g *Graph[T, W]) frozen(op string) (*csr.Frozen[T, W], error) {
	if g.state != StateFrozen {
		return nil, g.reject(op, core.ErrGraphNotFrozen)
	}

	return g.frz, nil
}

// AddNode appends a node and returns its handle.
// Errors: core.ErrAlreadyFrozen in StateFrozen.
func (g *Graph[T, W]) AddNode(payload T) (int, error) {
	d, err := g.mutable("AddNode")
	if err != nil {
		return 0, err
	}

	return d.AddNode(payload), nil
}

// RemoveNode tombstones idx and drops its incident edges.
// Errors: core.ErrAlreadyFrozen; core.NodeNotFound(idx).
func (g *Graph[T, W]) RemoveNode(idx int) error {
	d, err := g.mutable("RemoveNode")
	if err != nil {
		return err
	}

	return d.RemoveNode(idx)
}

// UpdateNode replaces idx's payload; edges are preserved.
// Errors: core.ErrAlreadyFrozen; core.NodeNotFound(idx).
func (g *Graph[T, W]) UpdateNode(idx int, payload T) error {
	d, err := g.mutable("UpdateNode")
	if err != nil {
		return err
	}

	return d.UpdateNode(idx, payload)
}

// AddEdge appends from→to with weight w.
// Errors: core.ErrAlreadyFrozen; core.NodeNotFound naming the first absent endpoint.
func (g *Graph[T, W]) AddEdge(from, to int, w W) error {
	d, err := g.mutable("AddEdge")
	if err != nil {
		return err
	}

	return d.AddEdge(from, to, w)
}

// AddEdges inserts a batch atomically: one bad endpoint rejects the whole batch.
// Errors: core.ErrAlreadyFrozen; core.NodeNotFound.
func (g *Graph[T, W]) AddEdges(edges ...core.Edge[W]) error {
	d, err := g.mutable("AddEdges")
	if err != nil {
		return err
	}

	return d.AddEdges(edges...)
}

// RemoveEdge removes the first from→to edge.
// Errors: core.ErrAlreadyFrozen; core.NodeNotFound; core.EdgeNotFound(from, to).
func (g *Graph[T, W]) RemoveEdge(from, to int) error {
	d, err := g.mutable("RemoveEdge")
	if err != nil {
		return err
	}

	return d.RemoveEdge(from, to)
}

// Freeze compiles the Dynamic graph to CSR and switches to StateFrozen.
// Handles, payloads, tombstones and adjacency order are preserved.
// Errors: core.ErrAlreadyFrozen if already frozen.
func (g *Graph[T, W]) Freeze() error {
	d, err := g.mutable("Freeze")
	if err != nil {
		return err
	}
	start := time.Now()
	g.frz = csr.Freeze(d)
	g.dyn = nil
	g.state = StateFrozen
	g.transitioned(transitionFreeze, time.Since(start))

	return nil
}

// Unfreeze rebuilds the Dynamic graph from CSR and switches to StateDynamic.
// Errors: core.ErrGraphNotFrozen if the graph is not frozen.
func (g *Graph[T, W]) Unfreeze() error {
	f, err := g.frozen("Unfreeze")
	if err != nil {
		return err
	}
	start := time.Now()
	g.dyn = csr.Thaw(f)
	g.frz = nil
	g.state = StateDynamic
	g.transitioned(transitionUnfreeze, time.Since(start))

	return nil
}

// transitioned logs and records a completed state change.
func (g *Graph[T, W]) transitioned(transition string, took time.Duration) {
	g.metrics.recordTransition(transition, took)
	g.log.WithFields(logrus.Fields{
		"transition": transition,
		"nodes":      g.NodeCount(),
		"edges":      g.EdgeCount(),
		"slots":      g.slotCount(),
		"duration":   took,
	}).Debug("graph: state transition")
}

// Snapshot returns the shared immutable CSR graph. It stays valid after Unfreeze
// and is safe for any number of concurrent readers.
// Errors: core.ErrGraphNotFrozen.
func (g *Graph[T, W]) Snapshot() (*csr.Frozen[T, W], error) {
	return g.frozen("Snapshot")
}

// ContainsNode reports whether idx is a live node. Valid in both states.
func (g *Graph[T, W]) ContainsNode(idx int) bool {
	if g.state == StateFrozen {
		return g.frz.Contains(idx)
	}

	return g.dyn.ContainsNode(idx)
}

// ContainsEdge reports whether at least one from→to edge exists. Valid in both states.
func (g *Graph[T, W]) ContainsEdge(from, to int) bool {
	if g.state == StateFrozen {
		if !g.frz.Contains(from) {
			return false
		}
		targets, _ := g.frz.Out(from)

		return slices.Contains(targets, to)
	}

	return g.dyn.ContainsEdge(from, to)
}

// Node returns idx's payload. Valid in both states.
// Errors: core.NodeNotFound(idx) for any index that is not a live node.
func (g *Graph[T, W]) Node(idx int) (T, error) {
	if g.state == StateFrozen {
		if !g.frz.Contains(idx) {
			var zero T
			return zero, core.NodeNotFound(idx)
		}

		return g.frz.Payload(idx)
	}

	return g.dyn.Node(idx)
}

// NodeCount returns the number of live nodes. Valid in both states.
func (g *Graph[T, W]) NodeCount() int {
	if g.state == StateFrozen {
		return g.frz.NodeCount()
	}

	return g.dyn.NodeCount()
}

// EdgeCount returns the number of edges. Valid in both states.
func (g *Graph[T, W]) EdgeCount() int {
	if g.state == StateFrozen {
		return g.frz.EdgeCount()
	}

	return g.dyn.EdgeCount()
}

// Nodes returns live handles ascending. Valid in both states.
func (g *Graph[T, W]) Nodes() []int {
	if g.state == StateFrozen {
		return g.frz.Nodes()
	}

	return g.dyn.Nodes()
}

// Edges returns every edge by source ascending, then adjacency order. Valid in both states.
func (g *Graph[T, W]) Edges() []core.Edge[W] {
	if g.state == StateFrozen {
		return g.frz.Edges()
	}

	return g.dyn.Edges()
}

func (g *Graph[T, W]) slotCount() int {
	if g.state == StateFrozen {
		return g.frz.SlotCount()
	}

	return g.dyn.SlotCount()
}
