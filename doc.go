// Package lvroute answers route questions over a small directed, weighted
// graph loaded from a comma-delimited edge list.
//
// What can it answer?
//
//	• Exact-route distance:      A-B-C → 9, or NO SUCH ROUTE
//	• Shortest path:             C→C → 9 (the shortest cycle), or inf
//	• Paths by number of stops:  how many A→E walks have <= 3 edges
//	• Paths by total distance:   how many C→C walks weigh < 30
//
// Walks may revisit vertices, so on a cyclic graph there are infinitely many;
// every path count is bounded by a stop value on depth or weight.
//
// Packages, leaf first:
//
//	core/     - thread-safe edge store, Adjacency snapshots, weight parsing
//	route/    - sum of weights along an explicit route
//	dijkstra/ - single-source shortest paths, tagged Length result
//	bfs/      - breadth-first traversal and reachability
//	search/   - priority-ordered bounded path enumeration
//	filter/   - <, <=, == operators and match counting
//	ingest/   - CSV edge lists → core.Graph
//	export/   - Graphviz DOT through gonum
//	query/    - Engine facade, shortest-path cache, validated batch queries
//
// Quick example (see cmd/lvroute for the command line):
//
//	g, _ := ingest.LoadFile("towns.csv")
//	e, _ := query.NewEngine(g)
//	n, _ := e.CountPaths(ctx, "A", "E", search.Depth, filter.LessOrEqual, 3)
package lvroute
