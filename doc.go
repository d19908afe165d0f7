// Copyright (c) 2025 The segrtree Authors
// SPDX-License-Identifier: MIT

// Package segrtree provides static, bulk-loaded, packed two-dimensional
// R-tree indexes over axis-aligned rectangles, for fast rectangle-range
// lookup over a fixed set of N rectangles known at construction time.
//
// segrtree offers four index variants built from the same packed array
// layout and the same query descent, differing only in how leaves are
// ordered before packing and how a node's bounding box is encoded:
//
//   - Build:        leaves kept in input order
//   - BuildHilbert:  leaves reordered by Hilbert-curve rank of their center
//   - BuildOMT:      leaves reordered by recursive Overlap-Minimizing-Tiling
//   - BuildSIMD:     input order, 4-lane bounding-box encoding for a
//     branch-free, auto-vectorizable intersection test
//
// The Hilbert and OMT variants only choose which rectangle lives at which
// leaf slot; the packed builder and query engine underneath are identical
// for Build, BuildHilbert and BuildOMT. BuildSIMD has its own builder over
// the 4-lane encoding and a query descent without the containment
// short-circuit. Result sets are identical across variants for the same
// query.
//
// The index is built once and is then read-only: there is no insertion,
// deletion, or disk persistence. Multiple goroutines may call QueryRect on
// the same index concurrently without synchronization.
package segrtree
