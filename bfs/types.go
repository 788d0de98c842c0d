package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrEmptyStart is returned when the start vertex ID is "".
	ErrEmptyStart = errors.New("bfs: start vertex ID is empty")

	// ErrOptionViolation is returned by Walk when an Option was given an
	// invalid argument.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option tunes a Walk.
type Option func(*config)

// config is the resolved set of Walk options.
type config struct {
	ctx      context.Context
	maxHops  int                             // 0 = unlimited
	follow   func(from, to string) bool      // nil = every edge
	onVisit  func(id string, hops int) error // nil = no hook
	badInput error
}

func newConfig(opts []Option) config {
	c := config{ctx: context.Background()}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithContext aborts the walk with ctx.Err() once ctx is done.
// The context is checked before every dequeue.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithMaxDepth stops expanding vertices that are d hops from the start.
// d == 0 means no limit; d < 0 is ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(c *config) {
		if d < 0 {
			c.badInput = fmt.Errorf("%w: max depth %d", ErrOptionViolation, d)
			return
		}
		c.maxHops = d
	}
}

// WithFilterNeighbor restricts the walk to edges from→to for which fn
// returns true.
func WithFilterNeighbor(fn func(from, to string) bool) Option {
	return func(c *config) { c.follow = fn }
}

// WithOnVisit calls fn for each vertex as it is dequeued. A non-nil error
// ends the walk and is returned wrapped.
func WithOnVisit(fn func(id string, hops int) error) Option {
	return func(c *config) { c.onVisit = fn }
}

// Tree is the breadth-first tree of one walk.
type Tree struct {
	// Order lists vertices in the order they were dequeued.
	Order []string
	// Hops maps each discovered vertex to its edge count from the start.
	Hops map[string]int
	// Parent maps each discovered vertex except the start to the vertex it
	// was discovered from.
	Parent map[string]string
}

// Reached reports whether id was discovered.
func (t *Tree) Reached(id string) bool {
	_, ok := t.Hops[id]

	return ok
}

// PathTo returns the tree path start→…→id.
func (t *Tree) PathTo(id string) ([]string, error) {
	n, ok := t.Hops[id]
	if !ok {
		return nil, fmt.Errorf("bfs: %q not reached", id)
	}
	path := make([]string, n+1)
	for i, cur := n, id; i >= 0; i-- {
		path[i] = cur
		cur = t.Parent[cur]
	}

	return path, nil
}
