// SPDX-License-Identifier: MIT
// Package: dualgraph/builder
//
// api.go - public entry point for the builder package.
//
// Contract:
//   - One orchestrator: Build(opts, cons...). Creates the graph, resolves cfg, runs cons in order.
//   - Constructors append: each one adds fresh nodes after the existing slots, so
//     several constructors in one Build produce a disjoint union.
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.
//   - Never panic; constructors return sentinel errors wrapped with context.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dualgraph/core"
)

// Graph is the concrete graph type produced by the builder: string payloads
// from the ID scheme and int64 weights from the weight function.
type Graph = core.Dynamic[string, int64]

// Constructor applies a deterministic mutation to g using the resolved config.
type Constructor func(g *Graph, cfg builderConfig) error

// Build creates an empty Dynamic graph, resolves opts, and applies cons in order.
// The first constructor error aborts the build and is returned wrapped as
// "Build: %w"; no partial graph is returned.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - ErrOptionViolation for an invalid option.
//   - Any constructor sentinel (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource).
func Build(opts []Option, cons ...Constructor) (*Graph, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("Build: %w", cfg.err)
	}
	g := core.NewDynamic[string, int64]()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// addNodes appends n nodes named by cfg.idFn and returns the first new handle.
func addNodes(g *Graph, cfg builderConfig, n int) int {
	base := g.SlotCount()
	for i := 0; i < n; i++ {
		g.AddNode(cfg.idFn(base + i))
	}

	return base
}

// link adds u→v with a weight drawn from cfg. Endpoints are always fresh
// handles created by the calling constructor.
func link(g *Graph, cfg builderConfig, u, v int) {
	_ = g.AddEdge(u, v, cfg.weightFn(cfg.rng))
}
