// Package builder generates deterministic lvroute graphs for tests,
// benchmarks and examples.
//
// A Constructor adds one topology to a core.Graph; BuildGraph creates the
// graph, resolves the functional options and applies constructors in order.
//
//   - Topologies: Cycle (directed ring), Path (directed chain), Complete
//     (every ordered pair), RandomSparse (each ordered pair with probability p).
//   - Vertex IDs: DefaultIDFn ("0","1",…) unless WithIDScheme supplies
//     another IDFn.
//   - Weights: constant 1 by default; WithConstantWeight, WithUniformWeight
//     or WithWeightFn. RandomSparse and UniformWeight need WithSeed/WithRand.
//
// Determinism: same constructors, options and seed ⇒ identical graphs.
// Constructors never panic; they return wrapped sentinel errors.
package builder
