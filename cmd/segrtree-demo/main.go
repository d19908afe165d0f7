// Copyright (c) 2025 The segrtree Authors
// SPDX-License-Identifier: MIT

// Command segrtree-demo builds a packed R-tree index over synthetic
// rectangles and reports build and query timings for each index variant.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/packedgeo/segrtree"
	"github.com/packedgeo/segrtree/internal/randgeo"
)

func main() {
	n := flag.Int("n", 500_000, "number of synthetic rectangles to index")
	queries := flag.Int("queries", 1_000, "number of query rectangles to run")
	flag.Parse()

	log.SetFlags(log.Lmicroseconds)

	prng := randgeo.NewPCG(42, 42)
	rects := randgeo.Rects(prng, *n, 100_000)
	probes := randgeo.Queries(prng, *queries, 100_000)

	runVariant("raw", func() segrtree.Queryable { return segrtree.Build(16, rects) }, probes)
	runVariant("hilbert", func() segrtree.Queryable { return segrtree.BuildHilbert(16, rects) }, probes)
	runVariant("omt", func() segrtree.Queryable { return segrtree.BuildOMT(rects) }, probes)
	runVariant("simd", func() segrtree.Queryable { return segrtree.BuildSIMD(16, rects) }, probes)
}

func runVariant(name string, build func() segrtree.Queryable, probes []segrtree.Rect) {
	start := time.Now()
	ix := build()
	buildDur := time.Since(start)

	start = time.Now()
	var hits int
	for _, q := range probes {
		hits += len(ix.QueryRect(q))
	}
	queryDur := time.Since(start)

	log.Printf("%-8s build=%-12v queries=%-12v hits=%d height=%d", name, buildDur, queryDur, hits, ix.Height())
}
