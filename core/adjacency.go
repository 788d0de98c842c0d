// File: adjacency.go
// Role: Read-only lookups on an Adjacency snapshot.
// Determinism:
//   - Vertices() and Neighbors() return results sorted by vertex ID.
// AI-HINT (file):
//   - Lookups on unknown vertices return empty results, never errors: a vertex
//     with no outgoing edges and a vertex the store has never seen behave alike.

package core

import "sort"

// Weight returns the weight of from→to and whether that edge exists.
func (a Adjacency) Weight(from, to string) (int64, bool) {
	w, ok := a[from][to]

	return w, ok
}

// Outgoing returns the destination→weight map of v. The result is nil for a
// vertex absent from the snapshot; ranging over it is still valid.
// Callers must not mutate the returned map.
func (a Adjacency) Outgoing(v string) map[string]int64 {
	return a[v]
}

// HasVertex reports whether v is a key of the snapshot.
func (a Adjacency) HasVertex(v string) bool {
	_, ok := a[v]

	return ok
}

// Neighbors returns the destinations of v sorted ascending.
// Complexity: O(d log d).
func (a Adjacency) Neighbors(v string) []string {
	out := make([]string, 0, len(a[v]))
	for to := range a[v] {
		out = append(out, to)
	}
	sort.Strings(out)

	return out
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (a Adjacency) Vertices() []string {
	out := make([]string, 0, len(a))
	for id := range a {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// EdgeCount returns the number of edges in the snapshot.
func (a Adjacency) EdgeCount() int {
	n := 0
	for _, out := range a {
		n += len(out)
	}

	return n
}
