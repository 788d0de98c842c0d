// File: methods_clone.go
// Role: Snapshotting, cloning and clearing graph instances.
// Concurrency:
//   - Read lock for snapshotting; the source graph is never mutated.
// AI-HINT (file):
//   - Edges() is the only way algorithms see the graph: a deep copy, safe to share.

package core

// Edges returns a deep copy of the adjacency. Mutating the result never
// affects the Graph or any other snapshot.
//
// Complexity: O(V + E).
func (g *Graph) Edges() Adjacency {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return copyAdjacency(g.adjacency)
}

// Clone returns an independent Graph holding the same edges.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return &Graph{adjacency: copyAdjacency(g.adjacency)}
}

// Clear removes every vertex and edge.
// Complexity: O(1).
func (g *Graph) Clear() {
	g.mu.Lock()
	g.adjacency = make(map[string]map[string]int64)
	g.mu.Unlock()
}

func copyAdjacency(src map[string]map[string]int64) Adjacency {
	out := make(Adjacency, len(src))
	var (
		from string
		tos  map[string]int64
	)
	for from, tos = range src {
		inner := make(map[string]int64, len(tos))
		for to, w := range tos {
			inner[to] = w
		}
		out[from] = inner
	}

	return out
}
