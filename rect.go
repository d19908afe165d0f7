// Copyright (c) 2025 The segrtree Authors
// SPDX-License-Identifier: MIT

package segrtree

import "math"

// Rect is an axis-aligned bounding box over two dimensions.
//
// An empty Rect is encoded by setting any field to NaN; all empty Rects
// compare equal to each other via [Rect.Equal]. Rect is comparable with
// == for non-empty values only; use [Rect.Equal] when either side might
// be empty.
type Rect struct {
	XMin, YMin, XMax, YMax float64
}

// EmptyRect is the canonical empty rectangle, the neutral element of
// [Rect.Merge].
var EmptyRect = Rect{math.NaN(), math.NaN(), math.NaN(), math.NaN()}

// NewRect returns the rectangle spanning the two corner points.
func NewRect(x1, y1, x2, y2 float64) Rect {
	return Rect{
		XMin: math.Min(x1, x2),
		YMin: math.Min(y1, y2),
		XMax: math.Max(x1, x2),
		YMax: math.Max(y1, y2),
	}
}

// IsEmpty reports whether r is the empty sentinel.
func (r Rect) IsEmpty() bool {
	return math.IsNaN(r.XMin) || math.IsNaN(r.YMin) || math.IsNaN(r.XMax) || math.IsNaN(r.YMax)
}

// Equal reports whether r and other denote the same rectangle, treating
// all empty rectangles as equal to one another.
func (r Rect) Equal(other Rect) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return r.IsEmpty() && other.IsEmpty()
	}
	return r.XMin == other.XMin && r.YMin == other.YMin && r.XMax == other.XMax && r.YMax == other.YMax
}

// Envelope returns r itself, satisfying the Envelope collaborator
// interface so a Rect can be indexed directly.
func (r Rect) Envelope() Rect {
	return r
}

// Intersects reports whether r and other share at least one point.
//
// An empty operand never intersects anything, including another empty
// rectangle: at least one comparison below involves NaN and is false, so
// the conjunction is false, which is exactly the desired outcome.
func (r Rect) Intersects(other Rect) bool {
	return r.XMin <= other.XMax && r.XMax >= other.XMin && r.YMin <= other.YMax && r.YMax >= other.YMin
}

// Contains reports whether other lies entirely within r.
func (r Rect) Contains(other Rect) bool {
	return r.XMin <= other.XMin && r.XMax >= other.XMax && r.YMin <= other.YMin && r.YMax >= other.YMax
}

// Center returns the componentwise midpoint of r. The center of an empty
// rectangle is (NaN, NaN).
func (r Rect) Center() (x, y float64) {
	return (r.XMin + r.XMax) / 2, (r.YMin + r.YMax) / 2
}

// Merge returns the smallest rectangle enclosing both r and other. An
// empty operand is neutral: merging an empty rectangle with x yields x.
func (r Rect) Merge(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	return Rect{
		XMin: math.Min(r.XMin, other.XMin),
		YMin: math.Min(r.YMin, other.YMin),
		XMax: math.Max(r.XMax, other.XMax),
		YMax: math.Max(r.YMax, other.YMax),
	}
}

// mergeAll folds Merge over rects, starting from the empty rectangle, so
// that an empty slice or an all-empty slice yields EmptyRect.
func mergeAll(rects []Rect) Rect {
	out := EmptyRect
	for _, r := range rects {
		out = out.Merge(r)
	}
	return out
}
