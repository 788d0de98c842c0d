package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/builder"
)

// letters names vertices the way the towns fixtures do: 0→"A", 1→"B", ...
func letters(idx int) string { return string(rune('A' + idx)) }

func TestCycle(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithIDScheme(letters)}, builder.Cycle(4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge("D", "A"))
	w, _ := g.Weight("A", "B")
	assert.Equal(t, int64(1), w)

	loop, err := builder.BuildGraph(nil, builder.Cycle(1))
	require.NoError(t, err)
	assert.True(t, loop.HasEdge("0", "0"))
}

func TestPathAndComplete(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithConstantWeight(7)},
		builder.Path(3),
		builder.Complete(3),
	)
	require.NoError(t, err)
	// Complete(3) overwrites the two path edges, leaving 6 ordered pairs.
	assert.Equal(t, 6, g.EdgeCount())
	w, ok := g.Weight("2", "0")
	require.True(t, ok)
	assert.Equal(t, int64(7), w)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func() []string {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 9)},
			builder.RandomSparse(12, 0.3),
		)
		require.NoError(t, err)
		adj := g.Edges()
		var out []string
		for _, u := range adj.Vertices() {
			for _, v := range adj.Neighbors(u) {
				w, _ := adj.Weight(u, v)
				assert.GreaterOrEqual(t, w, int64(1))
				assert.LessOrEqual(t, w, int64(9))
				out = append(out, u+">"+v)
			}
		}
		return out
	}
	assert.Equal(t, build(), build())
}

func TestRandomSparse_Extremes(t *testing.T) {
	full, err := builder.BuildGraph(nil, builder.RandomSparse(4, 1))
	require.NoError(t, err)
	assert.Equal(t, 12, full.EdgeCount())

	empty, err := builder.BuildGraph(nil, builder.RandomSparse(4, 0))
	require.NoError(t, err)
	assert.Zero(t, empty.EdgeCount())
}

func TestBuildGraph_Errors(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Cycle(0))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(nil, builder.Path(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(nil, builder.RandomSparse(3, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(nil, builder.RandomSparse(3, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph([]builder.BuilderOption{builder.WithUniformWeight(1, 3)}, builder.Cycle(3))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithConstantWeight(-1) })
	assert.Panics(t, func() { builder.WithUniformWeight(5, 1) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
}

func TestDefaultIDFn(t *testing.T) {
	assert.Equal(t, "0", builder.DefaultIDFn(0))
	assert.Equal(t, "42", builder.DefaultIDFn(42))
}
