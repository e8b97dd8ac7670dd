// SPDX-License-Identifier: MIT
// Package: bitgraph/builder
//
// impl_classic.go - deterministic constructors: Complete, Cycle, Path,
// Star, Wheel.
//
// Edge emission order is ascending by source node, so two builds with the
// same arguments produce identical buffers.

package builder

import (
	"github.com/katalvlaran/bitgraph/bitmatrix"
)

const (
	methodComplete = "Complete"
	methodCycle    = "Cycle"
	methodPath     = "Path"
	methodStar     = "Star"
	methodWheel    = "Wheel"

	minCompleteNodes = 1
	minCycleNodes    = 3
	minPathNodes     = 2
	minStarNodes     = 2
	minWheelNodes    = 4
)

// Complete links every pair of distinct nodes among 0..n-1.
func Complete(n int) Constructor {
	return func(g *bitmatrix.Graph, cfg builderConfig) error {
		if err := checkN(methodComplete, n, minCompleteNodes, g); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := cfg.link(g, i, j); err != nil {
					return wrapWrite(methodComplete, i, j, err)
				}
			}
		}

		return nil
	}
}

// Cycle links i → (i+1) mod n.
func Cycle(n int) Constructor {
	return func(g *bitmatrix.Graph, cfg builderConfig) error {
		if err := checkN(methodCycle, n, minCycleNodes, g); err != nil {
			return err
		}

		return ring(methodCycle, g, cfg, 0, n)
	}
}

// Path links i → i+1 for i < n-1.
func Path(n int) Constructor {
	return func(g *bitmatrix.Graph, cfg builderConfig) error {
		if err := checkN(methodPath, n, minPathNodes, g); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := cfg.link(g, i, i+1); err != nil {
				return wrapWrite(methodPath, i, i+1, err)
			}
		}

		return nil
	}
}

// Star links hub 0 with every leaf 1..n-1.
func Star(n int) Constructor {
	return func(g *bitmatrix.Graph, cfg builderConfig) error {
		if err := checkN(methodStar, n, minStarNodes, g); err != nil {
			return err
		}

		return spokes(methodStar, g, cfg, n)
	}
}

// Wheel is a Cycle over the rim 1..n-1 plus spokes from hub 0.
func Wheel(n int) Constructor {
	return func(g *bitmatrix.Graph, cfg builderConfig) error {
		if err := checkN(methodWheel, n, minWheelNodes, g); err != nil {
			return err
		}
		if err := spokes(methodWheel, g, cfg, n); err != nil {
			return err
		}

		return ring(methodWheel, g, cfg, 1, n)
	}
}

// ring links lo..hi-1 into a cycle.
func ring(method string, g *bitmatrix.Graph, cfg builderConfig, lo, hi int) error {
	k := hi - lo
	for i := 0; i < k; i++ {
		u, v := lo+i, lo+(i+1)%k
		if err := cfg.link(g, u, v); err != nil {
			return wrapWrite(method, u, v, err)
		}
	}

	return nil
}

func spokes(method string, g *bitmatrix.Graph, cfg builderConfig, n int) error {
	for leaf := 1; leaf < n; leaf++ {
		if err := cfg.link(g, 0, leaf); err != nil {
			return wrapWrite(method, 0, leaf, err)
		}
	}

	return nil
}
