// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for lvroute/core tests.

package core_test

import (
	"testing"

	"github.com/katalvlaran/lvroute/core"
	"github.com/stretchr/testify/require"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexE = "E"
)

// referenceRecords is the five-town graph used throughout the repository:
// A→B(5) B→C(4) C→D(8) D→C(8) D→E(6) A→D(5) C→E(2) E→B(3) A→E(7).
var referenceRecords = [][]string{
	{"A", "B", "5"},
	{"B", "C", "4"},
	{"C", "D", "8"},
	{"D", "C", "8"},
	{"D", "E", "6"},
	{"A", "D", "5"},
	{"C", "E", "2"},
	{"E", "B", "3"},
	{"A", "E", "7"},
}

// newReferenceGraph loads referenceRecords into a fresh Graph.
func newReferenceGraph(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.LoadRecords(referenceRecords))

	return g
}
