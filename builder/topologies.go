// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// topologies.go - Cycle, Path, Complete and RandomSparse constructors.
//
// Contract (all constructors):
//   • Vertices are named by cfg.idFn in ascending index order.
//   • Edges are emitted in a stable order, so weights drawn from a seeded
//     rng land on the same edges every run.
//   • Parameters are validated before the graph is touched.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodCycle        = "Cycle"
	methodPath         = "Path"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"

	minCycleNodes    = 1 // a single vertex cycle is a self-loop
	minPathNodes     = 2
	minCompleteNodes = 2
	minSparseNodes   = 1
)

// Cycle returns a Constructor for the directed ring 0→1→…→n-1→0.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := cfg.checkRand(methodCycle); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, g, cfg, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path returns a Constructor for the directed chain 0→1→…→n-1.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := cfg.checkRand(methodPath); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(methodPath, g, cfg, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor adding u→v for every ordered pair u≠v.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := cfg.checkRand(methodComplete); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := addEdge(methodComplete, g, cfg, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomSparse returns a Constructor that includes each ordered pair (i,j),
// i≠j, independently with probability p. An rng is required for 0 < p < 1.
// Vertices that draw no edge do not appear in the graph.
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minSparseNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := cfg.checkRand(methodRandomSparse); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || p == 0 {
					continue
				}
				// p == 1 takes every pair without consuming randomness
				if p < 1 && cfg.rng.Float64() > p {
					continue
				}
				if err := addEdge(methodRandomSparse, g, cfg, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
