// Copyright (c) 2025 The segrtree Authors
// SPDX-License-Identifier: MIT

// Package randgeo generates seeded-random rectangles for property tests
// and benchmarks: sets of input rectangles to index, and query rectangles
// to probe them with.
package randgeo

import (
	"math/rand/v2"

	"github.com/packedgeo/segrtree"
)

// NewPCG returns a *rand.Rand seeded deterministically from seed1/seed2,
// so property tests are reproducible across runs.
func NewPCG(seed1, seed2 uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed1, seed2))
}

// Rects returns n small rectangles whose lower-left corners are drawn
// uniformly from [0, bound) on each axis and whose width and height are
// each drawn from [0, bound/20), so the upper-right corner may extend past
// bound by up to bound/20. The average rectangle covers a small
// fraction of bound -- enough overlap to exercise the containment
// short-circuit without degenerating into one giant blob.
func Rects(prng *rand.Rand, n int, bound float64) []segrtree.Rect {
	rects := make([]segrtree.Rect, n)
	for i := range rects {
		x1 := prng.Float64() * bound
		y1 := prng.Float64() * bound
		w := prng.Float64() * (bound / 20)
		h := prng.Float64() * (bound / 20)
		rects[i] = segrtree.NewRect(x1, y1, x1+w, y1+h)
	}
	return rects
}

// Queries returns n query rectangles over the same [0, bound) domain as
// Rects, somewhat larger on average so queries tend to hit multiple
// indexed rectangles.
func Queries(prng *rand.Rand, n int, bound float64) []segrtree.Rect {
	rects := make([]segrtree.Rect, n)
	for i := range rects {
		x1 := prng.Float64() * bound
		y1 := prng.Float64() * bound
		w := prng.Float64() * (bound / 8)
		h := prng.Float64() * (bound / 8)
		rects[i] = segrtree.NewRect(x1, y1, x1+w, y1+h)
	}
	return rects
}

// BruteForce returns the indices of every rectangle in rects that
// intersects q, for comparison against an index's QueryRect.
func BruteForce(rects []segrtree.Rect, q segrtree.Rect) []int {
	var out []int
	for i, r := range rects {
		if r.Intersects(q) {
			out = append(out, i)
		}
	}
	return out
}
