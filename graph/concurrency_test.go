package graph_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dualgraph/bfs"
	"github.com/katalvlaran/dualgraph/dfs"
	"github.com/katalvlaran/dualgraph/dijkstra"
	"github.com/katalvlaran/dualgraph/scc"
)

// TestSnapshot_ConcurrentQueries runs every algorithm on one shared snapshot from many goroutines.
func TestSnapshot_ConcurrentQueries(t *testing.T) {
	g := scenario(t)
	require.NoError(t, g.Freeze())
	snap, err := g.Snapshot()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for r := 0; r < 32; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				path, ok, err := bfs.ShortestPath(snap, 0, 3)
				assert.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, []int{0, 1, 3}, path)

				_, cost, _, err := dijkstra.ShortestPath(snap, 0, 3)
				assert.NoError(t, err)
				assert.Equal(t, int64(2), cost)

				order, ok, err := dfs.TopologicalSort(snap)
				assert.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, []int{0, 1, 2, 3}, order)

				comps, err := scc.StronglyConnectedComponents(snap)
				assert.NoError(t, err)
				assert.Len(t, comps, 4)
			}
		}()
	}
	wg.Wait()
}
