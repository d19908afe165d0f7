// Copyright (c) 2025 The segrtree Authors
// SPDX-License-Identifier: MIT

package segrtree

// Queryable is the common surface of every index variant this package
// builds: the raw packed tree (wrapped, unpermuted, by Index), the
// Hilbert/OMT-presorted Index, and SIMDIndex.
type Queryable interface {
	IsEmpty() bool
	Height() int
	Degree() int
	Envelope() Rect
	QueryRect(q Rect) []int
}

// Envelope is the "rectangle source" collaborator contract: anything that
// can be asked for its own bounding box can be indexed, whether it is
// itself a Rect, a point, or richer user geometry.
type Envelope interface {
	Envelope() Rect
}

// Index owns a raw packed tree plus the permutation sigma that maps
// packed leaf positions back to caller indices. For the unpermuted Build
// constructor, sigma is nil and QueryRect returns raw indices unchanged.
type Index struct {
	raw   packedTree
	sigma []int // sigma[packedLeafPos] = callerIndex; nil means identity
}

var _ Queryable = (*Index)(nil)

// Build constructs an index over rects in input order, with no spatial
// presort. degree is clamped to at least 2.
func Build(degree int, rects []Rect) *Index {
	return &Index{raw: buildPackedTree(degree, rects)}
}

// BuildFrom is the generic form of Build, accepting anything satisfying
// Envelope instead of a concrete []Rect.
func BuildFrom[T Envelope](degree int, items []T) *Index {
	return Build(degree, envelopesOf(items))
}

// BuildHilbert constructs an index with leaves reordered by the Hilbert
// rank of their center over a grid covering the envelope of rects.
//
// If rects is empty or its envelope is empty, the result is the empty
// index.
func BuildHilbert(degree int, rects []Rect) *Index {
	envelope := mergeAll(rects)
	if envelope.IsEmpty() {
		return &Index{}
	}

	sorted, sigma := hilbertSort(envelope, rects)
	return &Index{raw: buildPackedTree(degree, sorted), sigma: sigma}
}

// BuildHilbertFrom is the generic form of BuildHilbert.
func BuildHilbertFrom[T Envelope](degree int, items []T) *Index {
	return BuildHilbert(degree, envelopesOf(items))
}

// omtDefaultDegree is the branching factor BuildOMT uses: a 4x4 tiling.
const omtDefaultDegree = 16

// BuildOMT constructs an index with leaves reordered by recursive
// Overlap-Minimizing-Tiling, with the branching factor fixed at 16 (a 4x4
// tile).
func BuildOMT(rects []Rect) *Index {
	return BuildOMTWithDegree(omtDefaultDegree, rects)
}

// BuildOMTFrom is the generic form of BuildOMT.
func BuildOMTFrom[T Envelope](items []T) *Index {
	return BuildOMT(envelopesOf(items))
}

// BuildOMTWithDegree is the escape hatch for an OMT index with a
// non-default branching factor. degree must be a perfect square; any
// other value panics with a *PreconditionViolation -- OMT's square-tiling
// requirement is a programming error, not a runtime condition to be
// handled gracefully.
func BuildOMTWithDegree(degree int, rects []Rect) *Index {
	side, ok := isqrt(degree)
	if !ok {
		panic(&PreconditionViolation{
			Op:     "BuildOMTWithDegree",
			Reason: "degree must be a perfect square for OMT tiling",
		})
	}

	if len(rects) == 0 {
		return &Index{}
	}

	sorted, sigma := omtSort(side, side, rects)
	return &Index{raw: buildPackedTree(degree, sorted), sigma: sigma}
}

// isqrt reports whether n is a perfect square >= 4 (OMT's minimum useful
// tiling) and, if so, its square root; otherwise it returns 0, false.
func isqrt(n int) (side int, ok bool) {
	if n < 4 {
		return 0, false
	}
	for s := 2; s*s <= n; s++ {
		if s*s == n {
			return s, true
		}
	}
	return 0, false
}

func (ix *Index) IsEmpty() bool { return ix.raw.IsEmpty() }
func (ix *Index) Height() int   { return ix.raw.Height() }
func (ix *Index) Degree() int   { return ix.raw.Degree() }
func (ix *Index) Envelope() Rect {
	return ix.raw.Envelope()
}

// QueryRect returns the caller-space indices of every input rectangle
// that overlaps q, in unspecified order, with no duplicates.
func (ix *Index) QueryRect(q Rect) []int {
	raw := ix.raw.QueryRect(q)
	if ix.sigma == nil {
		return raw
	}

	out := make([]int, 0, len(raw))
	for _, i := range raw {
		out = append(out, ix.sigma[i])
	}
	return out
}

func envelopesOf[T Envelope](items []T) []Rect {
	rects := make([]Rect, len(items))
	for i, it := range items {
		rects[i] = it.Envelope()
	}
	return rects
}
