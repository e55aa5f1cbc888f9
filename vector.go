// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "golang.org/x/exp/slices"

// A Vector is a contiguous, always-sorted sequence of ints. Locating
// an insertion point is O(log n), but inserting or removing shifts
// every element after the point.
type Vector struct {
	vals []int
}

func (v *Vector) Len() int {
	return len(v.vals)
}

// InsertSorted places x at the leftmost position that keeps v sorted.
func (v *Vector) InsertSorted(x int) {
	pos, _ := slices.BinarySearch(v.vals, x)
	v.vals = slices.Insert(v.vals, pos, x)
}

// RemoveAt deletes the element at index i, shifting later elements
// left to close the gap. i must be in [0, Len()).
func (v *Vector) RemoveAt(i int) {
	v.vals = slices.Delete(v.vals, i, i+1)
}

// Values returns a copy of the contents in order.
func (v *Vector) Values() []int {
	return slices.Clone(v.vals)
}
