// Package bfs walks an lvroute core.Adjacency breadth-first.
//
// Walk returns a Tree (visit Order, Hops from the start, Parent links) and
// accepts a context, a hop limit, an edge filter and a visit hook.
//
// CanReach builds on Walk to answer "is there a walk of at least one edge
// from s to t". The path search uses it, with a hop limit for depth bounds
// and an edge filter for its zero-weight cycle check, to refuse or skip
// searches before enumerating anything.
package bfs
