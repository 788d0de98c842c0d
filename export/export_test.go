package export_test

import (
	"testing"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromAdjacency(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 5))
	require.NoError(t, g.AddEdge("B", "C", 4))
	require.NoError(t, g.AddEdge("C", "C", 2))

	eg := export.FromAdjacency(g.Edges())
	assert.Equal(t, 3, eg.Nodes().Len())

	a, ok := eg.NodeFor("A")
	require.True(t, ok)
	b, ok := eg.NodeFor("B")
	require.True(t, ok)
	c, ok := eg.NodeFor("C")
	require.True(t, ok)

	w, ok := eg.Weight(a.ID(), b.ID())
	require.True(t, ok)
	assert.Equal(t, 5.0, w)
	assert.False(t, eg.HasEdgeFromTo(b.ID(), a.ID()))

	// self-loop survives as a node attribute
	require.Len(t, c.Attributes(), 1)
	assert.Equal(t, export.LoopWeightAttr, c.Attributes()[0].Key)
	assert.Equal(t, "2", c.Attributes()[0].Value)
	assert.Empty(t, a.Attributes())

	_, ok = eg.NodeFor("Z")
	assert.False(t, ok)
}

func TestDOT(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 5))
	require.NoError(t, g.AddEdge("B", "A", 3))

	out, err := export.DOT(g.Edges(), "towns")
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "digraph towns")
	assert.Contains(t, s, "A -> B")
	assert.Contains(t, s, "B -> A")
	assert.Contains(t, s, "weight=5")
	assert.Contains(t, s, "weight=3")
}
