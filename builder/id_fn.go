package builder

import "strconv"

// IDFn generates a vertex identifier from its zero-based index.
// It must be pure: topologies call it more than once per index.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}
