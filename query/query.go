package query

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/lvroute/filter"
	"github.com/katalvlaran/lvroute/search"
)

// ErrInvalidQuery wraps every Query validation failure.
var ErrInvalidQuery = errors.New("query: invalid query")

// Kind names one of the four questions an Engine answers.
type Kind string

// Query kinds, spelled as the command-line subcommands.
const (
	KindDistance        Kind = "distance"
	KindShortestPath    Kind = "shortest-path"
	KindPathsByStops    Kind = "paths-by-stops"
	KindPathsByDistance Kind = "paths-by-distance"
)

// Attribute returns the path attribute a counting kind bounds and filters on.
func (k Kind) Attribute() (search.Attribute, bool) {
	switch k {
	case KindPathsByStops:
		return search.Depth, true
	case KindPathsByDistance:
		return search.Weight, true
	}

	return 0, false
}

var queryValidate *validator.Validate

func init() {
	queryValidate = validator.New(validator.WithRequiredStructEnabled())

	if err := queryValidate.RegisterValidation("pathop", validatePathOperator); err != nil {
		panic(err)
	}
}

// validatePathOperator requires a parseable operator on counting queries and
// no operator on the others.
func validatePathOperator(fl validator.FieldLevel) bool {
	op := fl.Field().String()
	if _, counts := Kind(fl.Parent().FieldByName("Kind").String()).Attribute(); !counts {
		return op == ""
	}
	_, err := filter.ParseOperator(op)

	return err == nil
}

// Query is one question, as read from a batch file or built by the CLI.
type Query struct {
	Kind     Kind     `yaml:"kind" validate:"required,oneof=distance shortest-path paths-by-stops paths-by-distance"`
	Route    []string `yaml:"route,omitempty" validate:"required_if=Kind distance,dive,required"`
	Start    string   `yaml:"start,omitempty" validate:"required_unless=Kind distance"`
	End      string   `yaml:"end,omitempty" validate:"required_unless=Kind distance"`
	Operator string   `yaml:"operator,omitempty" validate:"pathop"`
	Value    int64    `yaml:"value,omitempty" validate:"gte=0"`
}

// Validate checks the query shape. Errors wrap ErrInvalidQuery.
func (q *Query) Validate() error {
	if err := queryValidate.Struct(q); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}

	return nil
}

// String renders the query arguments, e.g. "paths-by-stops A E <= 3".
func (q Query) String() string {
	switch q.Kind {
	case KindDistance:
		return fmt.Sprintf("%s %s", q.Kind, strings.Join(q.Route, ","))
	case KindShortestPath:
		return fmt.Sprintf("%s %s %s", q.Kind, q.Start, q.End)
	}

	return fmt.Sprintf("%s %s %s %s %d", q.Kind, q.Start, q.End, q.Operator, q.Value)
}

// Answer is the printable result of one Query.
type Answer struct {
	Query  Query
	Result string
	Route  []string // shortest-path only, nil when unreachable
}

func (a Answer) String() string {
	return a.Query.String() + ": " + a.Result
}

// Run validates q and answers it.
func (e *Engine) Run(ctx context.Context, q Query) (Answer, error) {
	if err := q.Validate(); err != nil {
		return Answer{}, err
	}
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}

	ans := Answer{Query: q}
	switch q.Kind {
	case KindDistance:
		res, err := e.Distance(q.Route)
		if err != nil {
			return Answer{}, err
		}
		ans.Result = res.String()
	case KindShortestPath:
		length, path, err := e.ShortestPath(q.Start, q.End)
		if err != nil {
			return Answer{}, err
		}
		ans.Result, ans.Route = length.String(), path
	default:
		attr, _ := q.Kind.Attribute()
		op, err := filter.ParseOperator(q.Operator)
		if err != nil {
			return Answer{}, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
		}
		n, err := e.CountPaths(ctx, q.Start, q.End, attr, op, q.Value)
		if err != nil {
			return Answer{}, err
		}
		ans.Result = strconv.Itoa(n)
	}

	return ans, nil
}
