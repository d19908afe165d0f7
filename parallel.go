// Copyright (c) 2025 The segrtree Authors
// SPDX-License-Identifier: MIT

package segrtree

import "golang.org/x/sync/errgroup"

// parallelThreshold is the smallest leaf count for which BuildParallel
// actually spins up goroutines; below it, goroutine setup costs more than
// it saves and the sequential path is used instead.
const parallelThreshold = 50_000

// BuildParallel is the concurrent-construction counterpart to Build: for
// each level, the fold of child groups into parent rectangles is
// partitioned across workers goroutines and joined with a barrier before
// the next level starts, since every level depends only on the one below
// it. workers <= 0 defaults to 1.
//
// The result is byte-for-byte identical to Build's, since Merge is
// associative/commutative over non-empty rectangles and EmptyRect is its
// neutral element: splitting a level's fold across goroutines never
// changes which children land in which parent group or the order they are
// merged in, only which goroutine computes each group.
func BuildParallel(degree, workers int, rects []Rect) *Index {
	if workers <= 0 {
		workers = 1
	}
	if len(rects) < parallelThreshold || workers == 1 {
		return Build(degree, rects)
	}
	return &Index{raw: buildPackedTreeParallel(degree, workers, rects)}
}

// BuildHilbertParallel is BuildHilbert, with the packing stage built via
// BuildParallel's concurrent level fold. The presort itself stays
// sequential; only the bottom-up merge pass is parallelized.
func BuildHilbertParallel(degree, workers int, rects []Rect) *Index {
	envelope := mergeAll(rects)
	if envelope.IsEmpty() {
		return &Index{}
	}
	sorted, sigma := hilbertSort(envelope, rects)
	if len(sorted) < parallelThreshold || workers <= 1 {
		return &Index{raw: buildPackedTree(degree, sorted), sigma: sigma}
	}
	return &Index{raw: buildPackedTreeParallel(degree, workers, sorted), sigma: sigma}
}

// BuildOMTParallel is BuildOMT, with the packing stage built via
// BuildParallel's concurrent level fold. The OMT tiling itself stays
// sequential; only the bottom-up merge pass is parallelized. degree must
// be a perfect square, as in BuildOMTWithDegree.
func BuildOMTParallel(degree, workers int, rects []Rect) *Index {
	side, ok := isqrt(degree)
	if !ok {
		panic(&PreconditionViolation{
			Op:     "BuildOMTParallel",
			Reason: "degree must be a perfect square for OMT tiling",
		})
	}

	if len(rects) == 0 {
		return &Index{}
	}

	sorted, sigma := omtSort(side, side, rects)
	if len(sorted) < parallelThreshold || workers <= 1 {
		return &Index{raw: buildPackedTree(degree, sorted), sigma: sigma}
	}
	return &Index{raw: buildPackedTreeParallel(degree, workers, sorted), sigma: sigma}
}

func buildPackedTreeParallel(degree, workers int, rects []Rect) packedTree {
	if degree < 2 {
		degree = 2
	}

	n := len(rects)
	if n == 0 {
		return packedTree{degree: degree}
	}

	levelIndices := computeLevelIndices(degree, n)
	flatSize := levelIndices[len(levelIndices)-1] + 1
	flat := make([]Rect, flatSize)
	for i := range flat {
		flat[i] = EmptyRect
	}
	copy(flat, rects)

	for level := 1; level < len(levelIndices); level++ {
		foldLevelParallel(flat, levelIndices[level-1], levelIndices[level], degree, workers)
	}

	return packedTree{
		degree:       degree,
		size:         n,
		levelIndices: levelIndices,
		flat:         flat,
	}
}

// foldLevelParallel is foldLevel, with the parent groups split into
// workers contiguous chunks, one goroutine per chunk, joined via
// errgroup before returning.
func foldLevelParallel(flat []Rect, childStart, parentStart, degree, workers int) {
	children := flat[childStart:parentStart]
	numGroups := (len(children) + degree - 1) / degree
	if numGroups < workers {
		workers = numGroups
	}
	if workers <= 1 {
		foldLevel(flat, childStart, parentStart, degree)
		return
	}

	groupsPerWorker := (numGroups + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		groupLo := w * groupsPerWorker
		groupHi := groupLo + groupsPerWorker
		if groupHi > numGroups {
			groupHi = numGroups
		}
		if groupLo >= groupHi {
			continue
		}

		g.Go(func() error {
			for groupIdx := groupLo; groupIdx < groupHi; groupIdx++ {
				lo := groupIdx * degree
				hi := lo + degree
				if hi > len(children) {
					hi = len(children)
				}
				flat[parentStart+groupIdx] = mergeAll(children[lo:hi])
			}
			return nil
		})
	}
	_ = g.Wait() // worker funcs never return an error
}
