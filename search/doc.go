// Package search enumerates the walks between two vertices of an lvroute
// core.Adjacency, bounded by a stop value on hop depth or cumulative weight.
//
// Algorithm
//
//	A min-priority queue holds partial walks keyed by the chosen Attribute.
//	It is seeded with the zero-length walk at start. Each step pops the
//	minimum; if its key is already >= stop the search ends, since every
//	remaining entry is at least as large. Otherwise every one-edge extension
//	is queued unconditionally, and an extension that ends at end with a key
//	<= stop is a match.
//
// Walks may revisit vertices, so on a cyclic graph the space of walks is
// infinite; the stop value is what makes the search finite. Weights are
// non-negative, so keys never decrease along a walk and the frontier
// eventually passes the bound.
//
// Ordering
//
//	Matches arrive in non-decreasing key order of the walk they extend.
//	Equal keys are served first-in first-out. Callers should only rely on
//	the set of matches.
//
// Errors
//
//	ErrPriorityAttribute – attribute is neither Depth nor Weight
//	ErrStopValue         – stop < 0 or stop == core.Infinity
package search
