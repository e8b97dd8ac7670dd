// SPDX-License-Identifier: MIT

// Package builder generates canonical topologies as bitmatrix graphs.
//
// BuildGraph allocates an N-node Graph and applies Constructors in order.
// Each constructor writes edges among the first n nodes it is given:
//
//   - Complete(n): every ordered pair i≠j
//   - Cycle(n):    i → (i+1) mod n
//   - Path(n):     i → i+1
//   - Star(n):     hub 0 ↔ every leaf
//   - Wheel(n):    Cycle over 1..n-1 plus Star at hub 0
//   - RandomSparse(n, p): each admissible pair independently with probability p
//
// By default edges are written in both directions, so the result is
// symmetric; WithDirected(true) writes only i → j.
//
// Determinism: same inputs, seed and constructor order yield identical bits.
package builder
