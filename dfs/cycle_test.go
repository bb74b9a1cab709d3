package dfs_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dualgraph/core"
	"github.com/katalvlaran/dualgraph/csr"
	"github.com/katalvlaran/dualgraph/dfs"
)

func TestFindCycle_SelfLoop(t *testing.T) {
	f := frozen(t, 2, [2]int{0, 1}, [2]int{1, 1})
	cycle, ok, err := dfs.FindCycle(f)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{1, 1}, cycle)
}

func TestFindCycle_TwoCycle(t *testing.T) {
	f := frozen(t, 2, [2]int{0, 1}, [2]int{1, 0})
	cycle, ok, err := dfs.FindCycle(f)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 0}, cycle)
}

func TestFindCycle_InnerLoop(t *testing.T) {
	f := frozen(t, 3, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 1})
	cycle, ok, err := dfs.FindCycle(f)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 1}, cycle)
}

func TestFindCycle_DAG(t *testing.T) {
	f := frozen(t, 4, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 3}, [2]int{2, 3})
	cycle, ok, err := dfs.FindCycle(f)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, cycle)

	has, err := dfs.HasCycle(f)
	require.NoError(t, err)
	assert.False(t, has)

	_, err = dfs.HasCycle[int, core.Unit](nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestFindCycle_TombstoneBreaksCycle(t *testing.T) {
	g := core.NewDynamic[int, core.Unit]()
	for i := 0; i < 3; i++ {
		g.AddNode(i)
	}
	require.NoError(t, g.AddEdge(0, 1, core.Unit{}))
	require.NoError(t, g.AddEdge(1, 2, core.Unit{}))
	require.NoError(t, g.AddEdge(2, 0, core.Unit{}))
	require.NoError(t, g.RemoveNode(2))

	has, err := dfs.HasCycle(csr.Freeze(g))
	require.NoError(t, err)
	assert.False(t, has)
}

func TestDetectCycles(t *testing.T) {
	f := frozen(t, 4,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{1, 0}, [2]int{2, 0}, [2]int{2, 2},
	)
	found, cycles, err := dfs.DetectCycles(f)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, [][]int{{0, 1, 0}, {0, 1, 2, 0}, {2, 2}}, cycles)

	found, cycles, err = dfs.DetectCycles(frozen(t, 3, [2]int{0, 1}, [2]int{1, 2}))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, cycles)
}

func TestDetectCycles_RotationDedup(t *testing.T) {
	// The walk enters the loop 3→1→2→3 at 3; the reported cycle starts at its minimum.
	f := frozen(t, 4, [2]int{3, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{0, 3})
	_, cycles, err := dfs.DetectCycles(f)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3, 1}}, cycles)
}

func TestMinimalRotation(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, dfs.MinimalRotation([]int{3, 1, 2}))
	assert.Equal(t, []int{1, 2}, dfs.MinimalRotation([]int{2, 1}))
	assert.Equal(t, []int{7}, dfs.MinimalRotation([]int{7}))
	assert.Equal(t, []string{"a", "b", "a", "c"}, dfs.MinimalRotation([]string{"a", "c", "a", "b"}))
	assert.Nil(t, dfs.MinimalRotation([]int{}))
	assert.Equal(t, "1,2,1", dfs.JoinSig([]int{1, 2, 1}))
}

// TestHasCycleIffTopoFails cross-checks both answers on random graphs.
func TestHasCycleIffTopoFails(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for round := 0; round < 200; round++ {
		n := 1 + rng.Intn(7)
		var edges [][2]int
		for e := rng.Intn(n * 2); e > 0; e-- {
			edges = append(edges, [2]int{rng.Intn(n), rng.Intn(n)})
		}
		f := frozen(t, n, edges...)

		cycle, has, err := dfs.FindCycle(f)
		require.NoError(t, err)
		order, ok, err := dfs.TopologicalSort(f)
		require.NoError(t, err)
		require.Equal(t, has, !ok, "round %d", round)

		if has {
			require.GreaterOrEqual(t, len(cycle), 2)
			assert.Equal(t, cycle[0], cycle[len(cycle)-1])
			for i := 1; i < len(cycle); i++ {
				assert.Contains(t, edges, [2]int{cycle[i-1], cycle[i]})
			}
			continue
		}
		require.Len(t, order, n)
		pos := make([]int, n)
		for i, v := range order {
			pos[v] = i
		}
		for _, e := range edges {
			assert.Less(t, pos[e[0]], pos[e[1]], "round %d edge %v", round, e)
		}
	}
}
