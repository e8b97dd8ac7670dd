// SPDX-License-Identifier: MIT
// Package: bitgraph/builder
//
// impl_random_sparse.go - Erdős–Rényi-like generator.
//
//   - Undirected: one Bernoulli trial per unordered pair {i,j}, i<j.
//   - Directed: one trial per ordered pair (i,j), i≠j.
//   - Trial order is fixed (i asc, j asc), so a fixed seed fixes the output.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bitgraph/bitmatrix"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse includes each admissible edge among 0..n-1 independently
// with probability p. Requires WithSeed or WithRand.
func RandomSparse(n int, p float64) Constructor {
	return func(g *bitmatrix.Graph, cfg builderConfig) error {
		if err := checkN(methodRandomSparse, n, minRandomSparseVertices, g); err != nil {
			return err
		}
		if math.IsNaN(p) || p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			start := i + 1
			if cfg.directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j || cfg.rng.Float64() >= p {
					continue
				}
				if err := cfg.link(g, i, j); err != nil {
					return wrapWrite(methodRandomSparse, i, j, err)
				}
			}
		}

		return nil
	}
}
