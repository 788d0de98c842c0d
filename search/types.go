// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Attribute, Path, sentinel errors and functional options of the
//       bounded path search.

package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvroute/core"
)

// Sentinel errors for search construction.
var (
	// ErrPriorityAttribute indicates an unknown bounding/ordering dimension.
	ErrPriorityAttribute = errors.New("search: priority attribute must be depth or weight")

	// ErrStopValue indicates a negative or infinite stop value.
	ErrStopValue = errors.New("search: stop value must satisfy 0 <= stop < infinity")

	// ErrZeroWeightCycle indicates that a weight-bounded search could loop
	// forever: a cycle of zero total weight lies within the bound.
	ErrZeroWeightCycle = errors.New("search: zero-weight cycle within the weight bound")
)

// Attribute selects the dimension paths are ordered and bounded by.
type Attribute int

const (
	// Depth orders and bounds paths by the number of edges traversed.
	Depth Attribute = iota + 1
	// Weight orders and bounds paths by the sum of their edge weights.
	Weight
)

// ParseAttribute maps "depth" and "weight" (case-insensitive) to an Attribute.
func ParseAttribute(s string) (Attribute, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "depth":
		return Depth, nil
	case "weight":
		return Weight, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrPriorityAttribute, s)
}

// Valid reports whether a is Depth or Weight.
func (a Attribute) Valid() bool { return a == Depth || a == Weight }

func (a Attribute) String() string {
	switch a {
	case Depth:
		return "depth"
	case Weight:
		return "weight"
	}

	return fmt.Sprintf("Attribute(%d)", int(a))
}

// Path is a walk from the search start: Vertices[0] is the start and the last
// element the current end. Vertices may repeat when the walk follows a cycle.
type Path struct {
	Vertices []string
	Depth    int   // len(Vertices)-1
	Weight   int64 // sum of traversed edge weights
}

// Value returns the path's Depth or Weight.
func (p Path) Value(a Attribute) int64 {
	if a == Depth {
		return int64(p.Depth)
	}

	return p.Weight
}

// Last returns the vertex the path currently ends at.
func (p Path) Last() string { return p.Vertices[len(p.Vertices)-1] }

// String renders the walk as "A-D-E".
func (p Path) String() string { return strings.Join(p.Vertices, "-") }

// extend returns p followed by the edge Last()→to. The vertex slice is always
// copied, so sibling extensions never share a backing array.
// Weight saturates at core.Infinity instead of overflowing.
func (p Path) extend(to string, w int64) Path {
	vs := make([]string, len(p.Vertices), len(p.Vertices)+1)
	copy(vs, p.Vertices)

	weight := core.Infinity
	if w < core.Infinity-p.Weight {
		weight = p.Weight + w
	}

	return Path{Vertices: append(vs, to), Depth: p.Depth + 1, Weight: weight}
}

// Option configures a Search.
type Option func(*Options)

// Options holds Search tunables.
type Options struct {
	// Prune runs a reachability check before the first pull and finishes
	// immediately when end cannot be reached through at least one edge.
	Prune bool

	// Ctx cancels the search. It is checked before every queue pop and
	// during the up-front graph checks.
	Ctx context.Context
}

// DefaultOptions enables pruning with a background context.
func DefaultOptions() Options {
	return Options{Prune: true, Ctx: context.Background()}
}

// WithoutPruning disables the up-front reachability check. Results are
// identical; only the amount of wasted expansion differs.
func WithoutPruning() Option {
	return func(o *Options) { o.Prune = false }
}

// WithContext ties the search to ctx. Once ctx is done, Next reports false
// and Err returns ctx.Err().
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
