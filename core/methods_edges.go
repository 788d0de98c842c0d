// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/EdgeCount.
// Concurrency:
//   - Mutations under the write lock.
//   - Read queries under the read lock.
// AI-HINT (file):
//   - AddEdge overwrites an existing (from,to) weight; there are no parallel edges.
//   - Both endpoints become vertices; the destination gets an empty bucket if new.

package core

import "fmt"

// AddEdge inserts the directed edge from→to with the given weight, or
// overwrites the weight of the existing from→to edge.
//
// Steps:
//  1. Validate IDs (ErrEmptyVertexID) and weight (ErrWeight).
//  2. Lock, ensure both endpoint buckets exist, store the weight.
//
// A rejected call leaves the store untouched.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if err := validateWeight(weight); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	ensureVertex(g, from)
	ensureVertex(g, to)
	g.adjacency[from][to] = weight

	return nil
}

// HasEdge reports whether the edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.Weight(from, to)

	return ok
}

// Weight returns the weight of from→to and whether that edge exists.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.adjacency[from][to]

	return w, ok
}

// EdgeCount returns the number of stored edges.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, out := range g.adjacency {
		n += len(out)
	}

	return n
}

// validateWeight enforces 0 <= weight <= MaxWeight.
func validateWeight(weight int64) error {
	if weight < 0 || weight > MaxWeight {
		return fmt.Errorf("%w: got %d", ErrWeight, weight)
	}

	return nil
}

// ensureVertex creates an empty outgoing bucket for id if it is missing.
// Caller must hold the write lock.
func ensureVertex(g *Graph, id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]int64)
	}
}
