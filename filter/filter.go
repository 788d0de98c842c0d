// Package filter counts the paths of a search whose depth or weight satisfies
// a comparison against a threshold.
package filter

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/lvroute/search"
)

// ErrUnknownOperator is returned by ParseOperator for anything but <, <= and ==.
var ErrUnknownOperator = errors.New("filter: operator must be one of <, <=, ==")

// Operator is a comparison of a path attribute against a threshold.
type Operator int

const (
	// Less matches value < threshold.
	Less Operator = iota + 1
	// LessOrEqual matches value <= threshold.
	LessOrEqual
	// Equal matches value == threshold.
	Equal
)

// ParseOperator maps the textual operators to an Operator.
func ParseOperator(s string) (Operator, error) {
	switch strings.TrimSpace(s) {
	case "<":
		return Less, nil
	case "<=":
		return LessOrEqual, nil
	case "==":
		return Equal, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, s)
}

// Compare applies the operator to value and threshold.
// An invalid Operator never matches.
func (op Operator) Compare(value, threshold int64) bool {
	switch op {
	case Less:
		return value < threshold
	case LessOrEqual:
		return value <= threshold
	case Equal:
		return value == threshold
	}

	return false
}

func (op Operator) String() string {
	switch op {
	case Less:
		return "<"
	case LessOrEqual:
		return "<="
	case Equal:
		return "=="
	}

	return fmt.Sprintf("Operator(%d)", int(op))
}

// Count consumes paths and returns how many satisfy op on attr against
// threshold. The sequence is drained completely.
func Count(paths iter.Seq[search.Path], attr search.Attribute, op Operator, threshold int64) int {
	n := 0
	for p := range paths {
		if op.Compare(p.Value(attr), threshold) {
			n++
		}
	}

	return n
}
