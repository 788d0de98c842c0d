package search_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/search"
)

// referenceAdjacency is the nine-edge towns graph used across lvroute tests.
func referenceAdjacency(t testing.TB) core.Adjacency {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.LoadRecords([][]string{
		{"A", "B", "5"}, {"B", "C", "4"}, {"C", "D", "8"},
		{"D", "C", "8"}, {"D", "E", "6"}, {"A", "D", "5"},
		{"C", "E", "2"}, {"E", "B", "3"}, {"A", "E", "7"},
	}))

	return g.Edges()
}

type walk struct {
	route  string
	weight int64
	depth  int
}

func collect(t *testing.T, adj core.Adjacency, start, end string, stop int64, attr search.Attribute, opts ...search.Option) []walk {
	t.Helper()
	s, err := search.New(adj, start, end, stop, attr, opts...)
	require.NoError(t, err)

	var out []walk
	for _, p := range s.Collect() {
		require.Equal(t, len(p.Vertices)-1, p.Depth)
		out = append(out, walk{route: p.String(), weight: p.Weight, depth: p.Depth})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].route < out[j].route })

	return out
}

func TestSearch_ReferenceSets(t *testing.T) {
	adj := referenceAdjacency(t)
	cases := []struct {
		name       string
		start, end string
		stop       int64
		attr       search.Attribute
		want       []walk
	}{
		{"A-E depth 2", "A", "E", 2, search.Depth, []walk{
			{"A-D-E", 11, 2}, {"A-E", 7, 1},
		}},
		{"C-C depth 2", "C", "C", 2, search.Depth, []walk{
			{"C-D-C", 16, 2},
		}},
		{"E-A depth 5", "E", "A", 5, search.Depth, nil},
		{"A-E weight 15", "A", "E", 15, search.Weight, []walk{
			{"A-B-C-E", 11, 3}, {"A-D-C-E", 15, 3}, {"A-D-E", 11, 2}, {"A-E", 7, 1},
		}},
		{"C-C weight 16", "C", "C", 16, search.Weight, []walk{
			{"C-D-C", 16, 2}, {"C-E-B-C", 9, 3},
		}},
		{"C-C weight 20", "C", "C", 20, search.Weight, []walk{
			{"C-D-C", 16, 2}, {"C-E-B-C", 9, 3}, {"C-E-B-C-E-B-C", 18, 6},
		}},
		{"E-A weight 99", "E", "A", 99, search.Weight, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, collect(t, adj, tc.start, tc.end, tc.stop, tc.attr))
			assert.Equal(t, tc.want, collect(t, adj, tc.start, tc.end, tc.stop, tc.attr, search.WithoutPruning()))
		})
	}
}

func TestSearch_StopZeroYieldsNothing(t *testing.T) {
	adj := referenceAdjacency(t)
	for _, attr := range []search.Attribute{search.Depth, search.Weight} {
		assert.Empty(t, collect(t, adj, "A", "E", 0, attr))
		assert.Empty(t, collect(t, adj, "C", "C", 0, attr))
	}
}

func TestSearch_ZeroWeightCycleWithinBound(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "A", 0))

	// depth still bounds the walk even when weights do not grow
	got := collect(t, g.Edges(), "A", "A", 4, search.Depth)
	assert.Equal(t, []walk{{"A-B-A", 0, 2}, {"A-B-A-B-A", 0, 4}}, got)
}

// TestSearch_ZeroWeightCycleUnderWeightBound refuses weight-bounded searches
// that would circle a zero-weight loop forever.
func TestSearch_ZeroWeightCycleUnderWeightBound(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "A", 0))
	require.NoError(t, g.AddEdge("A", "C", 5))
	adj := g.Edges()

	for _, opts := range [][]search.Option{nil, {search.WithoutPruning()}} {
		_, err := search.New(adj, "A", "C", 3, search.Weight, opts...)
		assert.ErrorIs(t, err, search.ErrZeroWeightCycle)
	}

	// stop 0 pops the seed and finishes at once
	assert.Empty(t, collect(t, adj, "A", "C", 0, search.Weight))
	// depth grows on every edge, so the loop is harmless there
	assert.Equal(t, []walk{{"A-B-A-C", 5, 3}, {"A-C", 5, 1}}, collect(t, adj, "A", "C", 3, search.Depth))
}

// TestSearch_ZeroWeightCycleBeyondBound runs normally when the loop can only
// be entered at or past the bound.
func TestSearch_ZeroWeightCycleBeyondBound(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 5))
	require.NoError(t, g.AddEdge("C", "D", 0))
	require.NoError(t, g.AddEdge("D", "C", 0))
	require.NoError(t, g.AddEdge("D", "B", 1))
	adj := g.Edges()

	assert.Equal(t, []walk{{"A-B", 1, 1}}, collect(t, adj, "A", "B", 5, search.Weight))

	_, err := search.New(adj, "A", "B", 6, search.Weight)
	assert.ErrorIs(t, err, search.ErrZeroWeightCycle)
}

func TestSearch_Context(t *testing.T) {
	adj := referenceAdjacency(t)

	ctx, cancel := context.WithCancel(context.Background())
	s, err := search.New(adj, "C", "C", 1000, search.Depth, search.WithContext(ctx), search.WithoutPruning())
	require.NoError(t, err)
	first, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, "C-D-C", first.String())

	cancel()
	_, ok = s.Next()
	assert.False(t, ok)
	assert.ErrorIs(t, s.Err(), context.Canceled)
	// stays exhausted
	_, ok = s.Next()
	assert.False(t, ok)

	// the up-front checks honour the context too
	_, err = search.New(adj, "A", "E", 10, search.Weight, search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	done, err := search.New(adj, "A", "E", 3, search.Depth)
	require.NoError(t, err)
	done.Collect()
	assert.NoError(t, done.Err())
}

func TestSearch_UnknownVertices(t *testing.T) {
	adj := referenceAdjacency(t)
	assert.Empty(t, collect(t, adj, "Z", "A", 10, search.Depth))
	assert.Empty(t, collect(t, adj, "A", "Z", 6, search.Depth, search.WithoutPruning()))
	assert.Empty(t, collect(t, adj, "", "A", 10, search.Depth))
}

func TestSearch_Errors(t *testing.T) {
	adj := referenceAdjacency(t)

	_, err := search.New(adj, "A", "E", 3, search.Attribute(0))
	assert.ErrorIs(t, err, search.ErrPriorityAttribute)

	// attribute is reported before the stop value
	_, err = search.New(adj, "A", "E", -1, search.Attribute(9))
	assert.ErrorIs(t, err, search.ErrPriorityAttribute)

	_, err = search.New(adj, "A", "E", -1, search.Depth)
	assert.ErrorIs(t, err, search.ErrStopValue)

	_, err = search.New(adj, "A", "E", core.Infinity, search.Weight)
	assert.ErrorIs(t, err, search.ErrStopValue)
}

func TestSearch_ExhaustedStaysExhausted(t *testing.T) {
	s, err := search.New(referenceAdjacency(t), "A", "E", 1, search.Depth)
	require.NoError(t, err)

	p, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, "A-E", p.String())

	_, ok = s.Next()
	assert.False(t, ok)
	_, ok = s.Next()
	assert.False(t, ok)
}

func TestSearch_NonDecreasingOrder(t *testing.T) {
	s, err := search.New(referenceAdjacency(t), "C", "C", 30, search.Weight)
	require.NoError(t, err)

	// matches come out in the order their parent walks were popped
	var prev int64 = -1
	n := 0
	for p := range s.All() {
		popped := p.Weight - lastHop(t, p)
		assert.GreaterOrEqual(t, popped, prev)
		prev = popped
		n++
	}
	// 9, 16, 18, 21, 25, 25, 27, 30, 30
	assert.Equal(t, 9, n)
}

func lastHop(t *testing.T, p search.Path) int64 {
	t.Helper()
	adj := referenceAdjacency(t)
	w, ok := adj.Weight(p.Vertices[len(p.Vertices)-2], p.Last())
	require.True(t, ok)

	return w
}

func TestSearch_AllStopsEarly(t *testing.T) {
	s, err := search.New(referenceAdjacency(t), "C", "C", 30, search.Weight)
	require.NoError(t, err)

	for range s.All() {
		break
	}
	// the remaining eight matches are still available
	assert.Len(t, s.Collect(), 8)
}

func TestPath_ExtensionsDoNotAlias(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("B", "D", 1))

	c := collect(t, g.Edges(), "A", "C", 5, search.Depth)
	d := collect(t, g.Edges(), "A", "D", 5, search.Depth)
	assert.Equal(t, []walk{{"A-B-C", 2, 2}}, c)
	assert.Equal(t, []walk{{"A-B-D", 2, 2}}, d)
}

func TestParseAttribute(t *testing.T) {
	a, err := search.ParseAttribute("depth")
	require.NoError(t, err)
	assert.Equal(t, search.Depth, a)

	a, err = search.ParseAttribute(" Weight ")
	require.NoError(t, err)
	assert.Equal(t, search.Weight, a)
	assert.Equal(t, "weight", a.String())

	_, err = search.ParseAttribute("hops")
	assert.ErrorIs(t, err, search.ErrPriorityAttribute)
}

// TestSearch_RingLaps counts laps around a directed ring: every match is a
// whole number of laps, and the depth bound caps how many fit.
func TestSearch_RingLaps(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithConstantWeight(2)}, builder.Cycle(5))
	require.NoError(t, err)
	adj := g.Edges()

	byDepth := collect(t, adj, "0", "0", 15, search.Depth)
	require.Len(t, byDepth, 3)
	for i, w := range byDepth {
		assert.Equal(t, 5*(i+1), w.depth)
	}

	// weight 2 per edge: one lap weighs 10, so 29 allows two laps
	assert.Len(t, collect(t, adj, "0", "0", 29, search.Weight), 2)
	assert.Len(t, collect(t, adj, "0", "3", 29, search.Weight), 3)
}
