package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// Walk explores adj breadth-first from start and returns the BFS tree.
//
// A start unknown to adj is visited alone. Neighbors are discovered in sorted
// order, so Order is reproducible.
// Errors: ErrEmptyStart, ErrOptionViolation, ctx.Err(), or a wrapped
// OnVisit error.
// Complexity: O(V + E log d), d the largest out-degree.
func Walk(adj core.Adjacency, start string, opts ...Option) (*Tree, error) {
	if start == "" {
		return nil, ErrEmptyStart
	}
	c := newConfig(opts)
	if c.badInput != nil {
		return nil, c.badInput
	}

	t := &Tree{
		Hops:   map[string]int{start: 0},
		Parent: make(map[string]string),
	}
	// Order doubles as the queue: Order[head:] is the frontier.
	t.Order = append(t.Order, start)
	for head := 0; head < len(t.Order); head++ {
		if err := c.ctx.Err(); err != nil {
			return t, err
		}
		u := t.Order[head]
		hops := t.Hops[u]
		if c.onVisit != nil {
			if err := c.onVisit(u, hops); err != nil {
				return t, fmt.Errorf("bfs: visiting %q: %w", u, err)
			}
		}
		if c.maxHops > 0 && hops >= c.maxHops {
			continue
		}
		for _, v := range adj.Neighbors(u) {
			if _, seen := t.Hops[v]; seen {
				continue
			}
			if c.follow != nil && !c.follow(u, v) {
				continue
			}
			t.Hops[v] = hops + 1
			t.Parent[v] = u
			t.Order = append(t.Order, v)
		}
	}

	return t, nil
}

// errReached stops a CanReach walk at the first vertex with an edge into the
// target.
var errReached = errors.New("target reached")

// CanReach reports whether a walk of at least one edge leads from start to
// target; start == target asks whether start lies on a cycle. The walk stops
// as soon as the answer is known. opts narrow the walk: WithMaxDepth(d)
// considers only walks of at most d+1 edges, WithFilterNeighbor also
// filters the final edge into target, and a WithOnVisit hook runs before the
// target check.
func CanReach(adj core.Adjacency, start, target string, opts ...Option) (bool, error) {
	c := newConfig(opts)
	hook := func(u string, hops int) error {
		if c.onVisit != nil {
			if err := c.onVisit(u, hops); err != nil {
				return err
			}
		}
		if _, ok := adj.Weight(u, target); ok && (c.follow == nil || c.follow(u, target)) {
			return errReached
		}
		return nil
	}

	walkOpts := append(append([]Option(nil), opts...), WithOnVisit(hook))
	_, err := Walk(adj, start, walkOpts...)
	switch {
	case errors.Is(err, errReached):
		return true, nil
	case err != nil:
		return false, err
	}

	return false, nil
}
