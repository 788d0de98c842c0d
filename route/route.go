// Package route sums edge weights along an explicit, caller-supplied route.
//
// A route is not searched: every consecutive pair must be a direct edge in the
// snapshot, otherwise the outcome is NoSuchRoute. NoSuchRoute is a result, not
// an error; the only error is an empty route.
package route

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvroute/core"
)

// NoSuchRouteText is how a missing route is displayed.
const NoSuchRouteText = "NO SUCH ROUTE"

// Sentinel errors for Distance.
var (
	// ErrEmptyRoute is returned when the route contains no vertices.
	ErrEmptyRoute = errors.New("route: route must contain at least one vertex")

	// ErrOverflow is returned when the total weight does not fit below
	// core.Infinity.
	ErrOverflow = errors.New("route: total distance overflows")
)

// Result is the tagged outcome of Distance: a total weight, or NoSuchRoute.
type Result struct {
	distance int64
	found    bool
}

// Found wraps a total route weight.
func Found(distance int64) Result { return Result{distance: distance, found: true} }

// NoSuchRoute is the result for a route with a missing hop.
func NoSuchRoute() Result { return Result{} }

// Distance returns the total weight and true, or 0 and false for NoSuchRoute.
func (r Result) Distance() (int64, bool) { return r.distance, r.found }

// Exists reports whether every hop of the route was an edge.
func (r Result) Exists() bool { return r.found }

// String renders the total weight or NoSuchRouteText.
func (r Result) String() string {
	if !r.found {
		return NoSuchRouteText
	}

	return strconv.FormatInt(r.distance, 10)
}

// Distance walks path over adj and sums the weights of consecutive hops.
//
// A single-vertex path is 0 without any lookup. A sum reaching core.Infinity
// fails with ErrOverflow. A hop whose source is unknown
// to adj is treated like a vertex without that outgoing edge.
// Complexity: O(len(path)).
func Distance(adj core.Adjacency, path []string) (Result, error) {
	if len(path) == 0 {
		return NoSuchRoute(), ErrEmptyRoute
	}

	var total int64
	for i := 1; i < len(path); i++ {
		w, ok := adj.Weight(path[i-1], path[i])
		if !ok {
			return NoSuchRoute(), nil
		}
		if w >= core.Infinity-total {
			return NoSuchRoute(), fmt.Errorf("%w: at hop %d (%s→%s)", ErrOverflow, i, path[i-1], path[i])
		}
		total += w
	}

	return Found(total), nil
}

// ParseRoute splits the "A,B,C" command-line form into vertex IDs.
// Surrounding spaces are trimmed; empty input yields an empty route.
func ParseRoute(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}
