// SPDX-License-Identifier: MIT
// Package: bitgraph/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(size, gopts, bopts, cons...). Creates g,
//     resolves cfg, runs cons in order.
//   - Constructors are implemented in impl_*.go.
//   - Constructors validate early and return sentinel errors; only option
//     constructors panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bitgraph/bitmatrix"
)

// Constructor applies a deterministic edge set using the resolved config.
type Constructor func(g *bitmatrix.Graph, cfg builderConfig) error

// BuildGraph creates a size-node Graph with gopts, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Graph invariants from gopts (symmetry, self-linking) are re-checked
// once all constructors ran.
func BuildGraph(size int, gopts []bitmatrix.Option, bopts []BuilderOption, cons ...Constructor) (*bitmatrix.Graph, error) {
	g, err := bitmatrix.NewGraph(size, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	g.Enforce()

	if cfg.labelFn != nil {
		for i := 0; i < size; i++ {
			if err = g.SetName(i, cfg.labelFn(i)); err != nil {
				return nil, fmt.Errorf("BuildGraph: %w", err)
			}
		}
	}

	return g, nil
}

// checkN validates n against the constructor minimum and the graph size.
func checkN(method string, n, minN int, g *bitmatrix.Graph) error {
	if n < minN {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minN, ErrTooFewVertices)
	}
	if n > g.Size() {
		return fmt.Errorf("%s: n=%d > graph size %d: %w", method, n, g.Size(), ErrTooFewVertices)
	}

	return nil
}

// wrapWrite attaches method context to a failed graph write.
func wrapWrite(method string, u, v int, err error) error {
	return fmt.Errorf("%s: link(%d,%d): %w: %w", method, u, v, ErrConstructFailed, err)
}
