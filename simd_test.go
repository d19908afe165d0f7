// Copyright (c) 2025 The segrtree Authors
// SPDX-License-Identifier: MIT

package segrtree

import "testing"

func TestRectToBBoxRoundTrip(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	got := rectToBBox(r).toRect()
	if !got.Equal(r) {
		t.Fatalf("rectToBBox(%v).toRect() = %v, want %v", r, got, r)
	}
}

func TestEmptyBBoxRoundTrip(t *testing.T) {
	got := rectToBBox(EmptyRect).toRect()
	if !got.IsEmpty() {
		t.Fatalf("rectToBBox(EmptyRect).toRect() = %v, want empty", got)
	}
}

func TestBBoxIntersectsQueryAgreesWithRect(t *testing.T) {
	pairs := []struct{ a, b Rect }{
		{NewRect(0, 0, 10, 10), NewRect(5, 5, 15, 15)},
		{NewRect(0, 0, 10, 10), NewRect(20, 20, 30, 30)},
		{NewRect(0, 0, 10, 10), NewRect(10, 10, 20, 20)}, // touching edges
	}
	for _, p := range pairs {
		want := p.a.Intersects(p.b)
		got := rectToBBox(p.a).intersectsQuery(queryBBox(p.b))
		if got != want {
			t.Errorf("intersectsQuery(%v, %v) = %v, want %v", p.a, p.b, got, want)
		}
	}
}

func TestBuildSIMDMatchesBruteForce(t *testing.T) {
	rects := canonical100()
	ix := BuildSIMD(8, rects)

	queries := []Rect{
		NewRect(40, 40, 60, 60),
		NewRect(0, 0, 100, 100),
		NewRect(-5, -5, -1, -1),
	}
	for _, q := range queries {
		got := sortedInts(ix.QueryRect(q))
		want := sortedInts(bruteForce(rects, q))
		if !equalIntSlices(got, want) {
			t.Fatalf("BuildSIMD QueryRect(%v) = %v, want %v", q, got, want)
		}
	}
}

func TestBuildSIMDEnvelopeMatchesRawBuild(t *testing.T) {
	rects := canonical100()
	raw := Build(8, rects)
	simd := BuildSIMD(8, rects)

	if !raw.Envelope().Equal(simd.Envelope()) {
		t.Fatalf("SIMD envelope %v != raw envelope %v", simd.Envelope(), raw.Envelope())
	}
}

func TestBuildSIMDOnEmptyInput(t *testing.T) {
	ix := BuildSIMD(8, nil)
	if !ix.IsEmpty() {
		t.Fatal("BuildSIMD(8, nil) should be empty")
	}
	if got := ix.QueryRect(NewRect(0, 0, 1, 1)); len(got) != 0 {
		t.Fatalf("QueryRect on empty SIMDIndex = %v, want none", got)
	}
}

func TestBuildSIMDDegreeClampedToTwo(t *testing.T) {
	ix := BuildSIMD(1, eightRects())
	if ix.Degree() != 2 {
		t.Fatalf("Degree() = %d, want 2 after clamping", ix.Degree())
	}
}
