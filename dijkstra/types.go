// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on lvroute snapshots.
//
// Options:
//
//	– Source:      ID of the starting vertex (must be non-empty).
//	– ReturnPath:  if true, return the predecessor map for path reconstruction.
//	– MaxDistance: optional cap on distances to explore; vertices beyond this are skipped.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrNoPath          if PathTo is asked for a vertex that was never reached.
package dijkstra

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvroute/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNoPath indicates that the requested target was never reached.
	ErrNoPath = errors.New("dijkstra: target not reachable from source")
)

// InfinityText is how an unreachable Length is displayed.
const InfinityText = "inf"

// Length is the tagged result of a shortest-path query: either a finite
// total weight or infinity (target unreachable).
type Length struct {
	value     int64
	reachable bool
}

// Finite wraps a reachable shortest-path length.
func Finite(v int64) Length { return Length{value: v, reachable: true} }

// Infinite is the length of an unreachable target.
func Infinite() Length { return Length{} }

// Value returns the length and true, or 0 and false when infinite.
func (l Length) Value() (int64, bool) { return l.value, l.reachable }

// IsInfinite reports whether the target was unreachable.
func (l Length) IsInfinite() bool { return !l.reachable }

// String renders the length or InfinityText.
func (l Length) String() string {
	if !l.reachable {
		return InfinityText
	}

	return strconv.FormatInt(l.value, 10)
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting vertex ID (must be non-empty).
// ReturnPath  – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance – optional cap on distances to explore (vertices beyond are skipped).
//
//	Must be ≥ 0. Default is core.Infinity (no cap).
type Options struct {
	Source      string // The ID of the source vertex
	ReturnPath  bool   // Whether to return the predecessor map
	MaxDistance int64  // Maximum distance to explore

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
// Must be called to specify the starting vertex ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// A negative value is recorded and surfaced as ErrBadMaxDistance by Dijkstra.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// for the given source vertex ID.
//
// Defaults:
//   - Source:      <as passed> (validated in Dijkstra).
//   - ReturnPath:  false.
//   - MaxDistance: core.Infinity (explore everything reachable).
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		ReturnPath:  false,
		MaxDistance: core.Infinity,
	}
}
