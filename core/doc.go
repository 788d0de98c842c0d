// Package core provides the thread-safe in-memory edge store every lvroute
// query runs against.
//
// The Graph G = (V,E) is directed and weighted, with at most one edge per
// ordered vertex pair:
//
//   - Constant-time edge operations via nested maps: adjacency[from][to] = weight
//   - Re-inserting (from,to) overwrites the weight (no multigraph)
//   - Weights are integers in [0, MaxWeight]; Infinity (math.MaxInt64) is reserved
//   - Self-loops are permitted
//   - A single sync.RWMutex guards the maps
//
// Snapshots:
//
//	Edges() returns an Adjacency, a deep copy of the store. Algorithms
//	(route, dijkstra, bfs, search) only ever read snapshots, so a snapshot can be
//	shared by concurrent queries without locking, and later AddEdge calls never
//	change what a running query sees.
//
// Lookup semantics:
//
//	Every edge endpoint is a key of the snapshot. A vertex with no outgoing
//	edges maps to an empty set, and Outgoing/Neighbors on a vertex the store has
//	never seen return empty results instead of failing.
//
// Core Methods:
//
//	AddEdge(from, to string, weight int64) error // O(1)
//	HasEdge(from, to string) bool                // O(1)
//	Weight(from, to string) (int64, bool)        // O(1)
//	HasVertex(id string) bool                    // O(1)
//	Vertices() []string                          // O(V·log V)
//	EdgeCount() int / VertexCount() int
//	Edges() Adjacency                            // O(V+E) deep copy
//	Clone() *Graph / Clear()
//	LoadRecords(records [][]string) error        // bulk (from,to,weight-text) insert
//	ParseWeight(text string) (int64, error)
//
// Errors:
//
//	ErrEmptyVertexID   – zero-length vertex ID
//	ErrWeight          – negative, non-integer or infinite weight
//	ErrMalformedRecord – a record that is not a 3-field triple
package core
