// Package export converts lvroute snapshots into gonum graphs and Graphviz
// DOT documents.
//
// The gonum representation is a simple.WeightedDirectedGraph whose nodes carry
// the vertex names. Simple graphs cannot hold self-loops, so a loop's weight is
// kept as the "loop_weight" attribute of its vertex instead.
package export

import (
	"math"
	"strconv"

	"github.com/katalvlaran/lvroute/core"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

// LoopWeightAttr is the DOT node attribute holding a self-loop weight.
const LoopWeightAttr = "loop_weight"

// Node is a named gonum node.
type Node struct {
	id   int64
	Name string
	// loop is the self-loop weight, valid when hasLoop is set.
	loop    int64
	hasLoop bool
}

// ID implements graph.Node.
func (n Node) ID() int64 { return n.id }

// DOTID implements dot.Node so vertices keep their names in DOT output.
func (n Node) DOTID() string { return n.Name }

// Attributes implements encoding.Attributer.
func (n Node) Attributes() []encoding.Attribute {
	if !n.hasLoop {
		return nil
	}

	return []encoding.Attribute{{Key: LoopWeightAttr, Value: strconv.FormatInt(n.loop, 10)}}
}

// Edge is a weighted directed gonum edge between two Nodes.
type Edge struct {
	F, T Node
	W    int64
}

// From implements graph.Edge.
func (e Edge) From() graph.Node { return e.F }

// To implements graph.Edge.
func (e Edge) To() graph.Node { return e.T }

// ReversedEdge implements graph.Edge.
func (e Edge) ReversedEdge() graph.Edge { return Edge{F: e.T, T: e.F, W: e.W} }

// Weight implements graph.WeightedEdge.
func (e Edge) Weight() float64 { return float64(e.W) }

// Attributes implements encoding.Attributer.
func (e Edge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "weight", Value: strconv.FormatInt(e.W, 10)}}
}

// Graph is a gonum weighted directed graph built from a snapshot.
type Graph struct {
	*simple.WeightedDirectedGraph

	byName map[string]Node
}

// FromAdjacency builds a Graph. Node IDs follow the sorted vertex order, so
// the same snapshot always yields the same graph.
// Complexity: O(V log V + E log E).
func FromAdjacency(adj core.Adjacency) *Graph {
	g := &Graph{
		WeightedDirectedGraph: simple.NewWeightedDirectedGraph(0, math.Inf(1)),
		byName:                make(map[string]Node, len(adj)),
	}

	names := adj.Vertices()
	for i, name := range names {
		n := Node{id: int64(i), Name: name}
		if w, ok := adj.Weight(name, name); ok {
			n.loop, n.hasLoop = w, true
		}
		g.byName[name] = n
		g.AddNode(n)
	}
	for _, from := range names {
		for _, to := range adj.Neighbors(from) {
			if from == to {
				continue
			}
			w, _ := adj.Weight(from, to)
			g.SetWeightedEdge(Edge{F: g.byName[from], T: g.byName[to], W: w})
		}
	}

	return g
}

// NodeFor returns the node named name.
func (g *Graph) NodeFor(name string) (Node, bool) {
	n, ok := g.byName[name]

	return n, ok
}

// DOT renders adj as a Graphviz digraph called name.
func DOT(adj core.Adjacency, name string) ([]byte, error) {
	return dot.Marshal(FromAdjacency(adj), name, "", "  ")
}
