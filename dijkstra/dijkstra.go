package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to every vertex reachable from it in adj.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance. Only reached vertices are
//     present. The source is seeded at distance 0 in the heap but is NOT
//     recorded in dist: dist[source] exists only when a cycle leads back to it,
//     and then holds the length of the shortest such cycle.
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v ends with the edge u→v.
//   - err:  ErrEmptySource or ErrBadMaxDistance.
//
// A source absent from adj simply has no outgoing edges.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(adj core.Adjacency, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions("")
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}

	// 2) Prepare state. Weights are validated on insertion, so no negative
	//    pre-scan is needed here.
	V := len(adj)
	r := &runner{
		adj:     adj,
		options: cfg,
		dist:    make(map[string]int64, V),
		pq:      make(nodePQ, 0, V),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, V)
	}

	// 3) Seed and run.
	r.init()
	r.process()

	return r.dist, r.prev, nil
}

// ShortestPathLength returns the length of the shortest path of at least one
// edge from start to end, or Infinite() if end is unreachable.
//
// start == end asks for the shortest cycle through start.
func ShortestPathLength(adj core.Adjacency, start, end string) (Length, error) {
	dist, _, err := Dijkstra(adj, Source(start))
	if err != nil {
		return Infinite(), err
	}

	return lengthTo(dist, end), nil
}

// LengthTo reads the Length of target out of a dist map produced by Dijkstra.
func LengthTo(dist map[string]int64, target string) Length {
	return lengthTo(dist, target)
}

func lengthTo(dist map[string]int64, target string) Length {
	if d, ok := dist[target]; ok {
		return Finite(d)
	}

	return Infinite()
}

// PathTo rebuilds the vertex sequence source→…→target from a predecessor map
// produced with WithReturnPath. When source == target the result is the
// shortest cycle, e.g. [C E B C].
func PathTo(prev map[string]string, source, target string) ([]string, error) {
	if _, ok := prev[target]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoPath, target)
	}

	// build reversed path; each vertex has one predecessor so the walk is
	// bounded by len(prev)+1 steps
	path := []string{target}
	cur := target
	for steps := 0; steps <= len(prev); steps++ {
		p, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: broken predecessor chain at %q", ErrNoPath, cur)
		}
		path = append(path, p)
		if p == source {
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}

			return path, nil
		}
		cur = p
	}

	return nil, fmt.Errorf("%w: predecessor chain does not reach %q", ErrNoPath, source)
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	adj     core.Adjacency    // The input snapshot; read-only.
	options Options           // Configuration options.
	dist    map[string]int64  // Maps vertex ID → current best distance from Source.
	prev    map[string]string // Maps vertex ID → predecessor on the shortest path.
	pq      nodePQ            // Min-heap of *nodeItem for lazy priority queue.
}

// init pushes Source=0 into the heap. dist is left empty on purpose: the
// source only earns a distance when a cycle returns to it.
func (r *runner) init() {
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process is the core loop. It repeatedly extracts the vertex with the
// minimum tentative distance and relaxes its outgoing edges until the heap is
// empty or the minimum exceeds MaxDistance.
func (r *runner) process() {
	var item *nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*nodeItem)

		// Skip stale entries: a strictly better distance was recorded later.
		if best, ok := r.dist[item.id]; ok && item.dist > best {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.relax(item.id, item.dist)
	}
}

// relax examines each edge u→v and records v when d+w strictly improves the
// best known distance (absent means infinite).
func (r *runner) relax(u string, d int64) {
	var (
		v       string
		w       int64
		newDist int64
	)
	for v, w = range r.adj.Outgoing(u) {
		// d <= MaxDistance here, so this also guards d+w against overflow.
		if w > r.options.MaxDistance-d {
			continue
		}
		newDist = d + w
		if best, ok := r.dist[v]; ok && newDist >= best {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string // vertex ID
	dist int64  // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, used with the
// lazy-decrease-key pattern: outdated entries stay in the heap and are skipped
// when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
