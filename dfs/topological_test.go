package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dualgraph/core"
	"github.com/katalvlaran/dualgraph/csr"
	"github.com/katalvlaran/dualgraph/dfs"
)

func TestTopologicalSort_Diamond(t *testing.T) {
	f := frozen(t, 4, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{1, 3}, [2]int{2, 3})
	order, ok, err := dfs.TopologicalSort(f)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2, 3}, order)
}

func TestTopologicalSort_Deterministic(t *testing.T) {
	// Roots 0 and 2 are independent; ascending roots put 2's tree first in the result.
	f := frozen(t, 4, [2]int{0, 1}, [2]int{2, 3})
	order, ok, err := dfs.TopologicalSort(f)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{2, 3, 0, 1}, order)

	again, _, _ := dfs.TopologicalSort(f)
	assert.Equal(t, order, again)
}

func TestTopologicalSort_Cyclic(t *testing.T) {
	for _, f := range []*csr.Frozen[int, core.Unit]{
		frozen(t, 1, [2]int{0, 0}),
		frozen(t, 2, [2]int{0, 1}, [2]int{1, 0}),
	} {
		order, ok, err := dfs.TopologicalSort(f)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, order)
	}
}

func TestTopologicalSort_SkipsTombstonesAndCancels(t *testing.T) {
	g := core.NewDynamic[int, core.Unit]()
	for i := 0; i < 3; i++ {
		g.AddNode(i)
	}
	require.NoError(t, g.AddEdge(2, 0, core.Unit{}))
	require.NoError(t, g.RemoveNode(1))
	f := csr.Freeze(g)

	order, ok, err := dfs.TopologicalSort(f)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{2, 0}, order)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = dfs.TopologicalSort(f, dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
