// Package query is the single entry point the command line talks to.
//
// An Engine takes one snapshot of a core.Graph and answers the four lvroute
// questions against it:
//
//	Distance      – total weight of an explicit route, or NO SUCH ROUTE
//	ShortestPath  – length (and route) of the cheapest walk, or inf
//	CountPaths    – number of walks bounded and filtered on depth or weight
//	Run/RunBatch  – validated Query values, one at a time or concurrently
//
// Shortest-path tables are computed once per source vertex and kept in an LRU
// cache. The snapshot is immutable, so batches run concurrently without locks.
package query
