// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// config.go - internal configuration, deterministic defaults and options.
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn ("0","1","2",...)
//   • rng      = nil (pure/deterministic unless seeded)
//   • weightFn = constant defaultConstWeight

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvroute/core"
)

const defaultConstWeight = int64(1)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
	// needsRand is set by weight policies that sample from rng.
	needsRand bool
}

// BuilderOption mutates builderConfig before any constructor runs.
// Invalid arguments panic: they are programmer errors in test fixtures.
type BuilderOption func(*builderConfig)

// WeightFn produces the weight of the next emitted edge.
type WeightFn func(rng *rand.Rand) int64

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: func(*rand.Rand) int64 { return defaultConstWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the vertex ID strategy.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand uses r for all stochastic choices.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) BuilderOption {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithWeightFn sets a custom weight policy. fn must return weights in
// [0, core.MaxWeight]; anything else surfaces as core.ErrWeight.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithConstantWeight gives every edge weight w.
func WithConstantWeight(w int64) BuilderOption {
	if w < 0 || w > core.MaxWeight {
		panic(fmt.Sprintf("builder: WithConstantWeight(%d) outside [0, MaxWeight]", w))
	}
	return func(c *builderConfig) {
		c.weightFn = func(*rand.Rand) int64 { return w }
		c.needsRand = false
	}
}

// WithUniformWeight draws each weight uniformly from [min, max].
// Requires WithSeed or WithRand.
func WithUniformWeight(min, max int64) BuilderOption {
	if min < 0 || max < min || max >= core.MaxWeight {
		panic(fmt.Sprintf("builder: WithUniformWeight(%d, %d) invalid range", min, max))
	}
	span := max - min + 1
	return func(c *builderConfig) {
		c.weightFn = func(r *rand.Rand) int64 { return min + r.Int63n(span) }
		c.needsRand = true
	}
}

// checkRand reports ErrNeedRandSource when the weight policy samples but no
// rng was configured.
func (c builderConfig) checkRand(method string) error {
	if c.needsRand && c.rng == nil {
		return fmt.Errorf("%s: uniform weights: %w", method, ErrNeedRandSource)
	}

	return nil
}
