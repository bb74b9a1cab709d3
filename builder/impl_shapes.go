// SPDX-License-Identifier: MIT
// impl_shapes.go - deterministic directed topologies.
//
// Edge order inside each constructor is fixed (ascending source, then target),
// so adjacency order and therefore every algorithm's tie-breaking is reproducible.

package builder

import "fmt"

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodComplete = "Complete"
	methodStar     = "Star"
	methodGrid     = "Grid"

	minPathNodes     = 1
	minCycleNodes    = 1
	minCompleteNodes = 1
	minStarNodes     = 1
	minGridSide      = 1
)

func tooFew(method, param string, got, min int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
}

// Path adds n nodes v0→v1→…→v(n-1).
func Path(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, "n", n, minPathNodes)
		}
		base := addNodes(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			link(g, cfg, base+i, base+i+1)
		}
		return nil
	}
}

// Cycle adds n nodes v0→v1→…→v(n-1)→v0. Cycle(1) is a single self-loop.
func Cycle(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, "n", n, minCycleNodes)
		}
		base := addNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			link(g, cfg, base+i, base+(i+1)%n)
		}
		return nil
	}
}

// Complete adds n nodes with an edge u→v for every ordered pair u≠v.
func Complete(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, "n", n, minCompleteNodes)
		}
		base := addNodes(g, cfg, n)
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u != v {
					link(g, cfg, base+u, base+v)
				}
			}
		}
		return nil
	}
}

// Star adds a hub plus n-1 leaves with hub→leaf edges.
func Star(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, "n", n, minStarNodes)
		}
		base := addNodes(g, cfg, n)
		for i := 1; i < n; i++ {
			link(g, cfg, base, base+i)
		}
		return nil
	}
}

// Grid adds a rows×cols lattice in row-major order with right and down edges.
// The result is a DAG whose single source is the top-left cell.
func Grid(rows, cols int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if rows < minGridSide {
			return tooFew(methodGrid, "rows", rows, minGridSide)
		}
		if cols < minGridSide {
			return tooFew(methodGrid, "cols", cols, minGridSide)
		}
		base := addNodes(g, cfg, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := base + r*cols + c
				if c+1 < cols {
					link(g, cfg, id, id+1)
				}
				if r+1 < rows {
					link(g, cfg, id, id+cols)
				}
			}
		}
		return nil
	}
}
