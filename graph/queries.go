package graph

import (
	"time"

	"github.com/katalvlaran/dualgraph/bfs"
	"github.com/katalvlaran/dualgraph/core"
	"github.com/katalvlaran/dualgraph/dfs"
	"github.com/katalvlaran/dualgraph/dijkstra"
	"github.com/katalvlaran/dualgraph/scc"
)

// Query names, used as the "query" metric attribute and the "op" of rejections.
const (
	queryIsReachable          = "IsReachable"
	queryShortestPathLen      = "ShortestPathLen"
	queryShortestPath         = "ShortestPath"
	queryShortestWeightedPath = "ShortestWeightedPath"
	queryHasCycle             = "HasCycle"
	queryFindCycle            = "FindCycle"
	queryTopologicalSort      = "TopologicalSort"
	querySCC                  = "StronglyConnectedComponents"
)

// observe records the duration of a query started at start.
func (g *Graph[T, W]) observe(query string, start time.Time) {
	g.metrics.recordQuery(query, time.Since(start))
}

// IsReachable reports whether a directed path start→stop exists.
// Errors: core.ErrGraphNotFrozen; core.NodeNotFound for a non-live endpoint.
func (g *Graph[T, W]) IsReachable(start, stop int) (bool, error) {
	f, err := g.frozen(queryIsReachable)
	if err != nil {
		return false, err
	}
	defer g.observe(queryIsReachable, time.Now())

	return bfs.Reachable(f, start, stop)
}

// ShortestPathLen returns the node count of a fewest-edge path (1 if start == stop).
// ok is false if stop is unreachable. Errors as IsReachable.
func (g *Graph[T, W]) ShortestPathLen(start, stop int) (int, bool, error) {
	f, err := g.frozen(queryShortestPathLen)
	if err != nil {
		return 0, false, err
	}
	defer g.observe(queryShortestPathLen, time.Now())

	return bfs.ShortestPathLen(f, start, stop)
}

// ShortestPath returns a fewest-edge path, both endpoints inclusive.
// ok is false if stop is unreachable. Errors as IsReachable.
func (g *Graph[T, W]) ShortestPath(start, stop int) ([]int, bool, error) {
	f, err := g.frozen(queryShortestPath)
	if err != nil {
		return nil, false, err
	}
	defer g.observe(queryShortestPath, time.Now())

	return bfs.ShortestPath(f, start, stop)
}

// HasCycle reports whether the graph contains a directed cycle.
// Errors: core.ErrGraphNotFrozen.
func (g *Graph[T, W]) HasCycle() (bool, error) {
	f, err := g.frozen(queryHasCycle)
	if err != nil {
		return false, err
	}
	defer g.observe(queryHasCycle, time.Now())

	return dfs.HasCycle(f)
}

// FindCycle returns one closed cycle [v0 … v0]; ok is false if acyclic.
// Errors: core.ErrGraphNotFrozen.
func (g *Graph[T, W]) FindCycle() ([]int, bool, error) {
	f, err := g.frozen(queryFindCycle)
	if err != nil {
		return nil, false, err
	}
	defer g.observe(queryFindCycle, time.Now())

	return dfs.FindCycle(f)
}

// TopologicalSort returns a topological order of live nodes; ok is false iff cyclic.
// Errors: core.ErrGraphNotFrozen.
func (g *Graph[T, W]) TopologicalSort() ([]int, bool, error) {
	f, err := g.frozen(queryTopologicalSort)
	if err != nil {
		return nil, false, err
	}
	defer g.observe(queryTopologicalSort, time.Now())

	return dfs.TopologicalSort(f)
}

// StronglyConnectedComponents returns every SCC, members ascending, in reverse
// topological order of the condensation.
// Errors: core.ErrGraphNotFrozen.
func (g *Graph[T, W]) StronglyConnectedComponents() ([][]int, error) {
	f, err := g.frozen(querySCC)
	if err != nil {
		return nil, err
	}
	defer g.observe(querySCC, time.Now())

	return scc.StronglyConnectedComponents(f)
}

// ShortestWeightedPath returns the minimum-cost path start→stop and its cost.
// It is a function rather than a method because it needs W to be numeric.
// ok is false if stop is unreachable.
// Errors: core.ErrGraphNotFrozen; core.NodeNotFound for a non-live endpoint;
// dijkstra errors for invalid options or an exhausted budget.
func ShortestWeightedPath[T any, W core.Weight](g *Graph[T, W], start, stop int, opts ...dijkstra.Option) ([]int, W, bool, error) {
	var zero W
	f, err := g.frozen(queryShortestWeightedPath)
	if err != nil {
		return nil, zero, false, err
	}
	defer g.observe(queryShortestWeightedPath, time.Now())

	return dijkstra.ShortestPath(f, start, stop, opts...)
}
