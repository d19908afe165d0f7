// Copyright (c) 2025 The segrtree Authors
// SPDX-License-Identifier: MIT

package segrtree

import (
	"fmt"
	"io"
)

// Dump writes a human-readable, level-by-level listing of ix's packed
// array to w: one line per node, indented by level, as
// "level:offset  rect", skipping empty padding slots. It is a debugging
// aid, not a serialization format -- there is no corresponding Load.
func Dump(w io.Writer, ix *Index) {
	dumpPackedTree(w, &ix.raw)
}

// DumpSIMD is Dump for the SIMD-encoded variant.
func DumpSIMD(w io.Writer, ix *SIMDIndex) {
	if ix.IsEmpty() {
		fmt.Fprintln(w, "(empty)")
		return
	}
	for level := ix.Height() - 1; level >= 0; level-- {
		dumpLevel(w, level, levelSize(ix.levelIndices, level), func(offset int) Rect {
			return ix.bboxAt(level, offset).toRect()
		})
	}
}

func dumpPackedTree(w io.Writer, t *packedTree) {
	if t.IsEmpty() {
		fmt.Fprintln(w, "(empty)")
		return
	}
	for level := t.Height() - 1; level >= 0; level-- {
		dumpLevel(w, level, levelSize(t.levelIndices, level), func(offset int) Rect {
			return t.rectAt(level, offset)
		})
	}
}

func levelSize(levelIndices []int, level int) int {
	if level+1 < len(levelIndices) {
		return levelIndices[level+1] - levelIndices[level]
	}
	// top level: exactly one entry, at the last recorded start.
	return 1
}

func dumpLevel(w io.Writer, level, size int, rectAt func(offset int) Rect) {
	indent := ""
	for i := 0; i < level; i++ {
		indent += "  "
	}
	for offset := 0; offset < size; offset++ {
		r := rectAt(offset)
		if r.IsEmpty() {
			continue
		}
		fmt.Fprintf(w, "%s%d:%d  [%g %g %g %g]\n", indent, level, offset, r.XMin, r.YMin, r.XMax, r.YMax)
	}
}
