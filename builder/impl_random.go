// SPDX-License-Identifier: MIT
// impl_random.go - stochastic topologies. Both require WithSeed or WithRand
// unless the outcome is forced (p ∈ {0,1}).

package builder

import "fmt"

const (
	methodRandomSparse = "RandomSparse"
	methodRandomEdges  = "RandomEdges"

	minRandomNodes = 1
	probMin        = 0.0
	probMax        = 1.0
)

// RandomSparse adds n nodes and includes each ordered pair u≠v independently
// with probability p (Erdős–Rényi G(n,p), directed, no self-loops).
// Pairs are tested in ascending (u, v) order, one draw per pair.
func RandomSparse(n int, p float64) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return tooFew(methodRandomSparse, "n", n, minRandomNodes)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base := addNodes(g, cfg, n)
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u == v {
					continue
				}
				if p == probMax || (p > probMin && cfg.rng.Float64() < p) {
					link(g, cfg, base+u, base+v)
				}
			}
		}
		return nil
	}
}

// RandomEdges adds n nodes and m edges with uniformly drawn endpoints.
// Self-loops and parallel edges are allowed, as in a random multigraph.
func RandomEdges(n, m int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return tooFew(methodRandomEdges, "n", n, minRandomNodes)
		}
		if m < 0 {
			return tooFew(methodRandomEdges, "m", m, 0)
		}
		if cfg.rng == nil && m > 0 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomEdges, ErrNeedRandSource)
		}

		base := addNodes(g, cfg, n)
		for i := 0; i < m; i++ {
			u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
			link(g, cfg, base+u, base+v)
		}
		return nil
	}
}
