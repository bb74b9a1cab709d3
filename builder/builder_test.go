package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dualgraph/builder"
	"github.com/katalvlaran/dualgraph/core"
)

// TestShapes checks node and edge counts of every deterministic constructor.
func TestShapes(t *testing.T) {
	cases := []struct {
		name         string
		con          builder.Constructor
		nodes, edges int
	}{
		{"path", builder.Path(4), 4, 3},
		{"path single", builder.Path(1), 1, 0},
		{"cycle", builder.Cycle(5), 5, 5},
		{"cycle self-loop", builder.Cycle(1), 1, 1},
		{"complete", builder.Complete(4), 4, 12},
		{"star", builder.Star(5), 5, 4},
		{"grid", builder.Grid(2, 3), 6, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.Build(nil, tc.con)
			require.NoError(t, err)
			assert.Equal(t, tc.nodes, g.NodeCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

// TestBuild_DisjointUnion appends constructors after existing slots.
func TestBuild_DisjointUnion(t *testing.T) {
	g, err := builder.Build(
		[]builder.Option{builder.WithPrefixIDs("v")},
		builder.Cycle(2), builder.Path(3),
	)
	require.NoError(t, err)
	want := []core.Edge[int64]{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 0, Weight: 1},
		{From: 2, To: 3, Weight: 1},
		{From: 3, To: 4, Weight: 1},
	}
	assert.Equal(t, want, g.Edges())
	p, err := g.Node(4)
	require.NoError(t, err)
	assert.Equal(t, "v4", p)
}

// TestGrid_EdgeOrder lists right-then-down edges in row-major order.
func TestGrid_EdgeOrder(t *testing.T) {
	g, err := builder.Build([]builder.Option{builder.WithConstantWeight(3)}, builder.Grid(2, 2))
	require.NoError(t, err)
	want := []core.Edge[int64]{
		{From: 0, To: 1, Weight: 3},
		{From: 0, To: 2, Weight: 3},
		{From: 1, To: 3, Weight: 3},
		{From: 2, To: 3, Weight: 3},
	}
	assert.Equal(t, want, g.Edges())
}

// TestRandom_Deterministic yields identical graphs for identical seeds.
func TestRandom_Deterministic(t *testing.T) {
	opts := func() []builder.Option {
		return []builder.Option{builder.WithSeed(9), builder.WithUniformWeight(1, 10)}
	}
	a, err := builder.Build(opts(), builder.RandomSparse(30, 0.2), builder.RandomEdges(10, 25))
	require.NoError(t, err)
	b, err := builder.Build(opts(), builder.RandomSparse(30, 0.2), builder.RandomEdges(10, 25))
	require.NoError(t, err)

	assert.Equal(t, a.Edges(), b.Edges())
	assert.Equal(t, 40, a.NodeCount())
	for _, e := range a.Edges() {
		assert.GreaterOrEqual(t, e.Weight, int64(1))
		assert.LessOrEqual(t, e.Weight, int64(10))
		if e.From < 30 {
			assert.NotEqual(t, e.From, e.To)
		}
	}
}

// TestRandomSparse_Extremes needs no rng when p forces the outcome.
func TestRandomSparse_Extremes(t *testing.T) {
	g, err := builder.Build(nil, builder.RandomSparse(4, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, g.EdgeCount())

	g, err = builder.Build(nil, builder.RandomSparse(4, 1))
	require.NoError(t, err)
	assert.Equal(t, 12, g.EdgeCount())
}

// TestErrors covers every sentinel.
func TestErrors(t *testing.T) {
	cases := []struct {
		name string
		opts []builder.Option
		con  builder.Constructor
		want error
	}{
		{"path", nil, builder.Path(0), builder.ErrTooFewVertices},
		{"grid cols", nil, builder.Grid(2, 0), builder.ErrTooFewVertices},
		{"edges m", []builder.Option{builder.WithSeed(1)}, builder.RandomEdges(3, -1), builder.ErrTooFewVertices},
		{"probability", nil, builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"no rng sparse", nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"no rng edges", nil, builder.RandomEdges(3, 2), builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
		{"negative weight", []builder.Option{builder.WithConstantWeight(-1)}, builder.Path(2), builder.ErrOptionViolation},
		{"uniform range", []builder.Option{builder.WithUniformWeight(5, 2)}, builder.Path(2), builder.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.Build(tc.opts, tc.con)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
