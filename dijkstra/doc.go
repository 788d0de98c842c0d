// Package dijkstra provides Dijkstra's shortest-path algorithm over an
// lvroute core.Adjacency snapshot with non-negative integer weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost paths from a single source vertex in
//     O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Supports optional path reconstruction and distance caps.
//
// Source semantics:
//
//	The search is seeded with (0, source) but the source is not given a
//	recorded distance. Only strictly improving relaxations are recorded and
//	enqueued, so dist[source] appears only if some cycle returns to the source:
//	"shortest path from C to C" is the shortest cycle through C, and is
//	infinite when no such cycle exists.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: if enabled, returns a “predecessor” map; PathTo rebuilds a route from it.
//   - MaxDistance: aborts exploration beyond a specified distance.
//   - Length: tagged finite/infinite result for a single target.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E); O(E) worst-case entries in the heap under the
//     “lazy decrease-key” strategy.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:    the Source string is empty.
//   - ErrBadMaxDistance: MaxDistance was set to a negative value.
//   - ErrNoPath:         PathTo was asked for a target that was never reached.
//
// Thread safety:
//
//   - Dijkstra only reads its snapshot; any number of runs may share one
//     core.Adjacency concurrently.
package dijkstra
