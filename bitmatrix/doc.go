// SPDX-License-Identifier: MIT

// Package bitmatrix stores square boolean matrices one bit per cell and
// builds graphs on top of them.
//
// The package provides:
//
//   - Matrix: an N×N bit-packed matrix (row-major, offset row*N + col) with
//     cell, row and column access, symmetry checks and repair, and diagonal
//     fill.
//   - Graph: a Matrix with a self-linking policy (diagonal forced to zero when
//     disabled), optional node labels and adjacency-list extraction.
//   - Construction adapters: FromRows, FromInts, FromBytes, FromTextRows and
//     their Graph counterparts.
//
// Invariants (force-symmetry, self-linking) are enforced at checkpoints only:
// construction, policy changes and explicit Enforce calls. Single-cell writes
// never re-check them.
//
// Memory is ceil(N²/8) bytes. Values are not safe for concurrent mutation;
// guard a shared Matrix with your own lock.
package bitmatrix
