// Copyright (c) 2025 The segrtree Authors
// SPDX-License-Identifier: MIT

package segrtree

import "sort"

// hilbertBits is the number of bits per axis of the square grid (side
// hilbertSide = 2^hilbertBits) that rectangle centers are quantized onto
// before computing a Hilbert rank.
const hilbertBits = 16

const hilbertSide = 1 << hilbertBits

// hilbertGrid maps a rectangle's center, relative to a fixed envelope, onto
// integer grid coordinates in [0, hilbertSide).
type hilbertGrid struct {
	xMin, yMin     float64
	xScale, yScale float64
}

// newHilbertGrid builds the grid covering envelope. Degenerate spans (a
// zero-width or zero-height envelope) get a scale of 0, which maps every
// point to grid coordinate 0 -- harmless, since that still yields a single,
// consistent rank for every item.
func newHilbertGrid(envelope Rect) hilbertGrid {
	g := hilbertGrid{xMin: envelope.XMin, yMin: envelope.YMin}

	if w := envelope.XMax - envelope.XMin; w > 0 {
		g.xScale = float64(hilbertSide-1) / w
	}
	if h := envelope.YMax - envelope.YMin; h > 0 {
		g.yScale = float64(hilbertSide-1) / h
	}
	return g
}

func (g hilbertGrid) rank(x, y float64) uint32 {
	gx := uint32((x - g.xMin) * g.xScale)
	gy := uint32((y - g.yMin) * g.yScale)
	return hilbertXYToD(hilbertBits, gx, gy)
}

// hilbertXYToD converts (x, y) grid coordinates, each in [0, 2^bits), to
// their distance along the Hilbert curve. Standard bit-rotation
// construction (Wikipedia's xy2d), iterating from the most significant bit
// down.
func hilbertXYToD(bits int, x, y uint32) uint32 {
	var d uint32
	for s := uint32(1) << (bits - 1); s > 0; s >>= 1 {
		var rx, ry uint32
		if x&s > 0 {
			rx = 1
		}
		if y&s > 0 {
			ry = 1
		}
		d += s * s * ((3 * rx) ^ ry)
		x, y = hilbertRotate(s, x, y, rx, ry)
	}
	return d
}

// hilbertRotate rotates/reflects the quadrant so the recursive construction
// keeps tracing a single connected curve.
func hilbertRotate(n, x, y, rx, ry uint32) (uint32, uint32) {
	if ry != 0 {
		return x, y
	}
	if rx == 1 {
		x = n - 1 - x
		y = n - 1 - y
	}
	return y, x
}

// hilbertEntry pairs an original index with its rectangle and precomputed
// Hilbert rank. Tie-breaking among equal ranks is unspecified; sort.Slice
// is not required to be stable.
type hilbertEntry struct {
	rank  uint32
	index int
	rect  Rect
}

// hilbertSort reorders rects by Hilbert rank of their center over a grid
// spanning envelope, returning the reordered rectangles and the
// permutation sigma such that sigma[newPos] = originalIndex.
func hilbertSort(envelope Rect, rects []Rect) (sorted []Rect, sigma []int) {
	grid := newHilbertGrid(envelope)

	entries := make([]hilbertEntry, len(rects))
	for i, r := range rects {
		cx, cy := r.Center()
		entries[i] = hilbertEntry{rank: grid.rank(cx, cy), index: i, rect: r}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].rank < entries[j].rank
	})

	sorted = make([]Rect, len(entries))
	sigma = make([]int, len(entries))
	for i, e := range entries {
		sorted[i] = e.rect
		sigma[i] = e.index
	}
	return sorted, sigma
}
