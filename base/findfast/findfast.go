// Copyright (c) 2026, The Oak Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package findfast implements bidirectional slice searching seeded by
// a starting guess, which is much faster than a linear scan when
// callers have a rough idea of where an item is, such as a cached
// index from a previous lookup.
package findfast

// FindFunc returns the index of an element of s matching the given
// function, searching outward in both directions from the optional
// starting index. When no starting index is given, the search starts
// in the middle, which is a good default. A starting index that is
// negative or out of range is clamped, so stale guesses are fine.
// It returns -1 if no element matches.
func FindFunc[T any](s []T, match func(e T) bool, startIndex ...int) int {
	n := len(s)
	if n == 0 {
		return -1
	}
	start := n / 2
	if len(startIndex) > 0 && startIndex[0] >= 0 {
		start = min(startIndex[0], n-1)
	}
	for lo, hi := start, start+1; lo >= 0 || hi < n; {
		if lo >= 0 {
			if match(s[lo]) {
				return lo
			}
			lo--
		}
		if hi < n {
			if match(s[hi]) {
				return hi
			}
			hi++
		}
	}
	return -1
}
