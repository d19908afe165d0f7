// Copyright (c) 2025 The segrtree Authors
// SPDX-License-Identifier: MIT

package segrtree

import "sync"

// stackPool recycles the (level, offset) descent stacks used by QueryRect,
// avoiding a fresh allocation on every query against a hot index.
var stackPool = sync.Pool{
	New: func() any {
		s := make([]stackEntry, 0, 64)
		return &s
	},
}

func getStack() []stackEntry {
	s := stackPool.Get().(*[]stackEntry)
	return (*s)[:0]
}

func putStack(s []stackEntry) {
	if cap(s) == 0 {
		return
	}
	//nolint:staticcheck // intentionally pooling the backing array, not s itself
	stackPool.Put(&s)
}
