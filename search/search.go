package search

import (
	"container/heap"
	"context"
	"fmt"
	"iter"
	"sort"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
)

// Search enumerates, in non-decreasing order of the chosen attribute, every
// walk from start to end whose attribute value does not exceed the stop value.
//
// A Search is a single-use pull iterator: once Next reports false it stays
// exhausted. Build a new Search to run the query again.
type Search struct {
	adj  core.Adjacency
	end  string
	stop int64
	attr Attribute
	ctx  context.Context

	pq      pathPQ
	seq     uint64 // insertion counter, FIFO tie-break among equal keys
	pending []Path // matches found by the last expansion, not yet returned
	done    bool
	err     error // why the search ended early, if it did
}

// New validates the query and prepares a Search seeded with the zero-length
// path at start.
//
// The attribute is checked before the stop value; neither failure allocates
// a queue. The zero-length seed is never itself a match: a match always
// traverses at least one edge, so start == end asks for cycles.
//
// A weight-bounded search is refused with ErrZeroWeightCycle when a cycle of
// zero total weight can be entered below the bound, since such a search
// would never exhaust. Depth-bounded searches always terminate.
func New(adj core.Adjacency, start, end string, stop int64, attr Attribute, opts ...Option) (*Search, error) {
	if !attr.Valid() {
		return nil, ErrPriorityAttribute
	}
	if stop < 0 || stop >= core.Infinity {
		return nil, ErrStopValue
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Search{adj: adj, end: end, stop: stop, attr: attr, ctx: o.Ctx}
	if o.Prune {
		ok, err := reachable(o.Ctx, adj, start, end, stop, attr)
		if err != nil {
			return nil, err
		}
		if !ok {
			s.done = true

			return s, nil
		}
	}
	if attr == Weight && stop > 0 && start != "" {
		if err := zeroCycleWithin(o.Ctx, adj, start, stop); err != nil {
			return nil, err
		}
	}

	heap.Init(&s.pq)
	s.push(Path{Vertices: []string{start}})

	return s, nil
}

// reachable reports whether some walk of at least one edge leads from start
// to end. Under a depth bound only walks of at most stop edges count. An empty
// start reaches nothing.
func reachable(ctx context.Context, adj core.Adjacency, start, end string, stop int64, attr Attribute) (bool, error) {
	if start == "" {
		return false, nil
	}
	opts := []bfs.Option{bfs.WithContext(ctx)}
	if attr == Depth && stop > 1 {
		opts = append(opts, bfs.WithMaxDepth(int(stop-1)))
	}

	return bfs.CanReach(adj, start, end, opts...)
}

// zeroCycleWithin returns ErrZeroWeightCycle when some vertex lying on a
// cycle of zero-weight edges is reachable from start at a distance below
// stop. Every vertex of such a cycle shares its distance, so walking only
// zero-weight edges from each candidate is enough.
func zeroCycleWithin(ctx context.Context, adj core.Adjacency, start string, stop int64) error {
	dist, _, err := dijkstra.Dijkstra(adj, dijkstra.Source(start), dijkstra.WithMaxDistance(stop-1))
	if err != nil {
		return err
	}

	zero := func(from, to string) bool {
		w, ok := adj.Weight(from, to)
		return ok && w == 0
	}
	candidates := make([]string, 0, len(dist)+1)
	for v := range dist {
		if v != start {
			candidates = append(candidates, v)
		}
	}
	sort.Strings(candidates)
	for _, v := range append([]string{start}, candidates...) {
		onCycle, err := bfs.CanReach(adj, v, v, bfs.WithFilterNeighbor(zero), bfs.WithContext(ctx))
		if err != nil {
			return err
		}
		if onCycle {
			return fmt.Errorf("%w: through %q", ErrZeroWeightCycle, v)
		}
	}

	return nil
}

// Next returns the next matching path, or false once the search is exhausted.
//
// Each call pops queue entries until a match is available: a popped path
// whose value has reached the stop value ends the whole search, otherwise all
// its one-edge extensions are queued and those ending at end within the bound
// become matches.
func (s *Search) Next() (Path, bool) {
	for {
		if len(s.pending) > 0 {
			p := s.pending[0]
			s.pending = s.pending[1:]

			return p, true
		}
		if s.done {
			return Path{}, false
		}
		if err := s.ctx.Err(); err != nil {
			s.err = err
			s.finish()
			continue
		}
		if s.pq.Len() == 0 {
			s.finish()
			continue
		}

		item := heap.Pop(&s.pq).(*pathItem)
		if item.key >= s.stop {
			// every queued key is >= item.key
			s.finish()
			continue
		}
		s.expand(item.path)
	}
}

// Err reports why the search stopped before exhausting the queue: the
// context error when it was cancelled, nil otherwise.
func (s *Search) Err() error { return s.err }

// All adapts the search to a range-over-func sequence.
func (s *Search) All() iter.Seq[Path] {
	return func(yield func(Path) bool) {
		for {
			p, ok := s.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// Collect drains the search into a slice.
func (s *Search) Collect() []Path {
	var out []Path
	for p := range s.All() {
		out = append(out, p)
	}

	return out
}

// expand queues every one-edge extension of p. Neighbors are visited in
// sorted order so equal-key extensions keep a reproducible order.
func (s *Search) expand(p Path) {
	last := p.Last()
	for _, to := range s.adj.Neighbors(last) {
		w, _ := s.adj.Weight(last, to)
		next := p.extend(to, w)
		s.push(next)
		if to == s.end && next.Value(s.attr) <= s.stop {
			s.pending = append(s.pending, next)
		}
	}
}

func (s *Search) push(p Path) {
	heap.Push(&s.pq, &pathItem{path: p, key: p.Value(s.attr), seq: s.seq})
	s.seq++
}

// finish drops the queue so the frontier can be collected.
func (s *Search) finish() {
	s.done = true
	s.pq = nil
}

// pathItem is a queued partial path and its priority.
type pathItem struct {
	path Path
	key  int64
	seq  uint64
}

// pathPQ is a min-heap of *pathItem ordered by key, then by insertion order.
type pathPQ []*pathItem

func (pq pathPQ) Len() int { return len(pq) }

func (pq pathPQ) Less(i, j int) bool {
	if pq[i].key != pq[j].key {
		return pq[i].key < pq[j].key
	}

	return pq[i].seq < pq[j].seq
}

func (pq pathPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *pathPQ) Push(x interface{}) { *pq = append(*pq, x.(*pathItem)) }

func (pq *pathPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
