// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph and Adjacency types, sentinel errors, and the NewGraph constructor.
// Concurrency:
//   - Graph guards its adjacency with a single sync.RWMutex.
//   - Adjacency values returned to callers are private deep copies.

package core

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrWeight indicates an edge weight outside [0, MaxWeight] or a weight
	// text that is not a decimal integer.
	ErrWeight = errors.New("core: weight must satisfy 0 <= weight < infinity")

	// ErrMalformedRecord indicates a delimited record that is not a
	// (from, to, weight) triple.
	ErrMalformedRecord = errors.New("core: record must have exactly 3 fields")
)

// Infinity is the reserved top value of the weight domain. It is never a
// valid edge weight; algorithms use it as the "unreached" distance.
const Infinity int64 = math.MaxInt64

// MaxWeight is the largest weight AddEdge accepts.
const MaxWeight int64 = Infinity - 1

// recordFields is the number of fields in one delimited edge record.
const recordFields = 3

// Graph is the in-memory edge store: a directed, weighted graph with at most
// one edge per ordered vertex pair.
//
// adjacency[from][to] = weight. Every vertex mentioned by an edge is a key of
// the outer map, so a vertex without outgoing edges maps to an empty inner map.
type Graph struct {
	mu sync.RWMutex // guards adjacency

	adjacency map[string]map[string]int64
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{adjacency: make(map[string]map[string]int64)}
}

// Adjacency is an immutable-by-convention snapshot of a Graph:
// Adjacency[from][to] = weight.
//
// Snapshots are produced by Graph.Edges and never alias the live store, so
// they can be read concurrently by any number of queries.
type Adjacency map[string]map[string]int64
