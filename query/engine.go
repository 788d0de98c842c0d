package query

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/filter"
	"github.com/katalvlaran/lvroute/route"
	"github.com/katalvlaran/lvroute/search"
)

// Defaults for Engine options.
const (
	DefaultCacheSize   = 128
	DefaultConcurrency = 4
)

// Sentinel errors for engine construction.
var (
	ErrNilGraph = errors.New("query: graph is nil")
	ErrOption   = errors.New("query: invalid option")
)

// Option configures an Engine.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	cacheSize   int
	concurrency int
	err         error
}

// WithLogger sets the engine logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCacheSize bounds the number of cached shortest-path tables.
// Zero disables caching; negative sizes are rejected.
func WithCacheSize(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: cache size %d", ErrOption, n)
			return
		}
		o.cacheSize = n
	}
}

// WithConcurrency sets how many batch queries run at once (>= 1).
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: concurrency %d", ErrOption, n)
			return
		}
		o.concurrency = n
	}
}

// table is one Dijkstra run: distances and predecessors from a source.
type table struct {
	dist map[string]int64
	prev map[string]string
}

// Engine answers route queries over an immutable snapshot.
// It is safe for concurrent use.
type Engine struct {
	adj         core.Adjacency
	logger      *slog.Logger
	tables      *lru.Cache[string, table] // nil when caching is disabled
	concurrency int
}

// NewEngine snapshots g. Later changes to g are not visible to the engine.
func NewEngine(g *core.Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := options{
		logger:      slog.New(slog.DiscardHandler),
		cacheSize:   DefaultCacheSize,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	e := &Engine{
		adj:         g.Edges(),
		logger:      o.logger,
		concurrency: o.concurrency,
	}
	if o.cacheSize > 0 {
		cache, err := lru.NewWithEvict[string, table](o.cacheSize, e.handleEviction)
		if err != nil {
			return nil, fmt.Errorf("query: shortest-path cache: %w", err)
		}
		e.tables = cache
	}
	e.logger.Debug("engine ready",
		"vertices", len(e.adj),
		"edges", e.adj.EdgeCount(),
		"cache_size", o.cacheSize)

	return e, nil
}

func (e *Engine) handleEviction(source string, _ table) {
	e.logger.Debug("shortest-path table evicted", "source", source)
}

// Snapshot returns the adjacency the engine answers from. Callers must not
// modify it.
func (e *Engine) Snapshot() core.Adjacency { return e.adj }

// Distance sums the edge weights along path.
func (e *Engine) Distance(path []string) (route.Result, error) {
	res, err := route.Distance(e.adj, path)
	if err != nil {
		return res, err
	}
	e.logger.Debug("distance", "route", path, "result", res.String())

	return res, nil
}

// ShortestPath returns the shortest walk of at least one edge from start to
// end, and its vertices when one exists. An unreachable end is an infinite
// Length with a nil route, not an error.
func (e *Engine) ShortestPath(start, end string) (dijkstra.Length, []string, error) {
	t, err := e.table(start)
	if err != nil {
		return dijkstra.Infinite(), nil, err
	}

	length := dijkstra.LengthTo(t.dist, end)
	if length.IsInfinite() {
		return length, nil, nil
	}
	path, err := dijkstra.PathTo(t.prev, start, end)
	if err != nil {
		return length, nil, err
	}

	return length, path, nil
}

// table returns the cached Dijkstra run for source, computing it on a miss.
// Two goroutines missing at once both compute; the result is identical.
func (e *Engine) table(source string) (table, error) {
	if e.tables != nil {
		if t, ok := e.tables.Get(source); ok {
			e.logger.Debug("shortest-path cache hit", "source", source)
			return t, nil
		}
	}

	dist, prev, err := dijkstra.Dijkstra(e.adj, dijkstra.Source(source), dijkstra.WithReturnPath())
	if err != nil {
		return table{}, err
	}
	t := table{dist: dist, prev: prev}
	if e.tables != nil {
		e.tables.Add(source, t)
	}

	return t, nil
}

// CountPaths searches walks from start to end bounded by value on attr and
// counts those satisfying op against the same value.
//
// ctx is checked before every queue pop; a cancelled search returns ctx.Err().
// Weight bounds that would let a zero-weight cycle loop forever fail with
// search.ErrZeroWeightCycle.
func (e *Engine) CountPaths(
	ctx context.Context,
	start, end string,
	attr search.Attribute,
	op filter.Operator,
	value int64,
) (int, error) {
	begin := time.Now()
	s, err := search.New(e.adj, start, end, value, attr, search.WithContext(ctx))
	if err != nil {
		return 0, err
	}

	n := filter.Count(s.All(), attr, op, value)
	if err = s.Err(); err != nil {
		return 0, err
	}
	e.logger.Debug("count paths",
		"start", start, "end", end,
		"attribute", attr.String(), "operator", op.String(), "value", value,
		"count", n, "elapsed", time.Since(begin))

	return n, nil
}
