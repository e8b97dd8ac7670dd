// SPDX-License-Identifier: MIT
// Package: bitgraph/builder
//
// config.go - resolved builder configuration and its functional options.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/bitgraph/bitmatrix"
)

// BuilderOption mutates a builderConfig during resolution.
type BuilderOption func(*builderConfig)

// builderConfig is the immutable result of option resolution.
type builderConfig struct {
	rng      *rand.Rand       // nil unless WithSeed/WithRand
	directed bool             // write i→j only
	labelFn  func(int) string // nil: no labels
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand supplies the RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed seeds a private RNG for stochastic constructors.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // G404: deterministic fixtures
	}
}

// WithDirected writes each generated edge only in its i → j direction.
func WithDirected(directed bool) BuilderOption {
	return func(c *builderConfig) { c.directed = directed }
}

// WithLabelScheme names every node touched by BuildGraph with fn(i).
// Panics on nil.
func WithLabelScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithLabelScheme(nil)")
	}

	return func(c *builderConfig) { c.labelFn = fn }
}

// link writes u→v, and v→u unless directed.
func (c builderConfig) link(g *bitmatrix.Graph, u, v int) error {
	if err := g.Write(u, v, true); err != nil {
		return err
	}
	if c.directed {
		return nil
	}

	return g.Write(v, u, true)
}
