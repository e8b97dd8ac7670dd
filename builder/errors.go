// SPDX-License-Identifier: MIT
// Package: bitgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach method context
// using %w.

package builder

import (
	"errors"
)

// ErrTooFewVertices indicates that n is below the constructor minimum or
// exceeds the graph size.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed
// or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a failed graph write.
var ErrConstructFailed = errors.New("builder: construction failed")
