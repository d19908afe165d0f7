// Copyright (c) 2025 The segrtree Authors
// SPDX-License-Identifier: MIT

package segrtree

import "math"

// bbox is the 4-lane, SIMD-friendly encoding of a rectangle:
// [XMin, YMin, -XMax, -YMax]. Against a query encoded the same way but
// with min/max swapped, intersection becomes four monotone <= comparisons
// with no branches between lanes.
//
// Empty slots are encoded with +Inf in every lane rather than NaN: a <=
// comparison against +Inf is always false unless the other side is also
// +Inf, so padding can never satisfy an intersection test and the
// comparisons stay branch-free total orders (no NaN hazard to guard
// against, unlike the AoS Rect representation).
type bbox [4]float64

var emptyBBox = bbox{math.Inf(1), math.Inf(1), math.Inf(1), math.Inf(1)}

func rectToBBox(r Rect) bbox {
	if r.IsEmpty() {
		return emptyBBox
	}
	return bbox{r.XMin, r.YMin, -r.XMax, -r.YMax}
}

func (b bbox) toRect() Rect {
	if b == emptyBBox {
		return EmptyRect
	}
	return Rect{XMin: b[0], YMin: b[1], XMax: -b[2], YMax: -b[3]}
}

// queryBBox encodes a query rectangle for comparison against stored
// bboxes: [XMax, YMax, -XMin, -YMin].
func queryBBox(q Rect) bbox {
	return bbox{q.XMax, q.YMax, -q.XMin, -q.YMin}
}

// intersectsQuery reports whether the stored box b overlaps a query
// encoded by queryBBox, via a branch-free bitwise-and fold of four
// independent <= comparisons (left as a bitwise fold rather than a
// short-circuit && so the compiler is free to evaluate all four lanes
// without data-dependent branches).
func (b bbox) intersectsQuery(q bbox) bool {
	c0 := b[0] <= q[0]
	c1 := b[1] <= q[1]
	c2 := b[2] <= q[2]
	c3 := b[3] <= q[3]
	return laneBit(c0)&laneBit(c1)&laneBit(c2)&laneBit(c3) == 1
}

// laneBit converts one lane's comparison result to 0 or 1 so the lanes can
// be combined with a bitwise and.
func laneBit(c bool) uint8 {
	if c {
		return 1
	}
	return 0
}

// SIMDIndex is the packed tree built on the 4-lane bbox encoding instead of
// Rect. It has no containment short-circuit -- every candidate subtree is
// descended into rather than special-cased, keeping the comparison loop
// free of data-dependent branches -- and never reorders its input.
type SIMDIndex struct {
	degree       int
	size         int
	levelIndices []int
	tree         []bbox
}

var _ Queryable = (*SIMDIndex)(nil)

// BuildSIMD constructs a SIMD-friendly index over rects in input order.
// For best auto-vectorization, degree should be chosen to align with the
// target's SIMD lane width (e.g. 8 or 16), though any degree >= 2 works.
func BuildSIMD(degree int, rects []Rect) *SIMDIndex {
	if degree < 2 {
		degree = 2
	}

	n := len(rects)
	if n == 0 {
		return &SIMDIndex{degree: degree}
	}

	levelIndices := computeLevelIndices(degree, n)
	treeSize := levelIndices[len(levelIndices)-1] + 1
	tree := make([]bbox, treeSize)
	for i := range tree {
		tree[i] = emptyBBox
	}
	for i, r := range rects {
		tree[i] = rectToBBox(r)
	}

	for level := 1; level < len(levelIndices); level++ {
		foldBBoxLevel(tree, levelIndices[level-1], levelIndices[level], degree)
	}

	return &SIMDIndex{
		degree:       degree,
		size:         n,
		levelIndices: levelIndices,
		tree:         tree,
	}
}

func foldBBoxLevel(tree []bbox, childStart, parentStart, degree int) {
	children := tree[childStart:parentStart]
	for i := 0; i < len(children); i += degree {
		end := i + degree
		if end > len(children) {
			end = len(children)
		}
		out := emptyBBox
		for _, c := range children[i:end] {
			out[0] = math.Min(out[0], c[0])
			out[1] = math.Min(out[1], c[1])
			out[2] = math.Min(out[2], c[2])
			out[3] = math.Min(out[3], c[3])
		}
		tree[parentStart] = out
		parentStart++
	}
}

func (ix *SIMDIndex) IsEmpty() bool { return ix.size == 0 }
func (ix *SIMDIndex) Height() int   { return len(ix.levelIndices) }
func (ix *SIMDIndex) Degree() int   { return ix.degree }

func (ix *SIMDIndex) Envelope() Rect {
	if ix.IsEmpty() {
		return EmptyRect
	}
	return ix.bboxAt(ix.Height()-1, 0).toRect()
}

func (ix *SIMDIndex) bboxAt(level, offset int) bbox {
	return ix.tree[ix.levelIndices[level]+offset]
}

// QueryRect returns the caller-space indices of every input rectangle
// whose bbox satisfies the four-lane intersection test against q. No
// containment short-circuit: every candidate subtree is descended into.
func (ix *SIMDIndex) QueryRect(q Rect) []int {
	var results []int
	if ix.IsEmpty() {
		return results
	}

	query := queryBBox(q)
	rootLevel := ix.Height() - 1
	if !ix.bboxAt(rootLevel, 0).intersectsQuery(query) {
		return results
	}

	stack := getStack()
	defer func() { putStack(stack) }()

	stack = append(stack, stackEntry{rootLevel, 0})

	for len(stack) > 0 {
		entry := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if entry.level == 0 {
			results = append(results, entry.offset)
			continue
		}

		childLevel := entry.level - 1
		firstChildOffset := ix.degree * entry.offset

		for j := 0; j < ix.degree; j++ {
			childOffset := firstChildOffset + j
			if ix.bboxAt(childLevel, childOffset).intersectsQuery(query) {
				stack = append(stack, stackEntry{childLevel, childOffset})
			}
		}
	}

	return results
}
