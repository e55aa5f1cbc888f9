// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

func wantVals(t *testing.T, got, want []int) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Errorf("want %v, got %v", want, got)
	}
}

func TestInsertSortedKeepsOrder(t *testing.T) {
	for _, n := range []int{1, 2, 100, 1000} {
		rng := rand.New(rand.NewSource(uint64(n)))

		var vec Vector
		insertRandom(&vec, n, rng)
		if vec.Len() != n {
			t.Errorf("n=%d: vector has %d elements", n, vec.Len())
		}
		if !slices.IsSorted(vec.Values()) {
			t.Errorf("n=%d: vector not sorted: %v", n, vec.Values())
		}

		var lst List
		insertRandom(&lst, n, rng)
		if lst.Len() != n {
			t.Errorf("n=%d: list has %d elements", n, lst.Len())
		}
		if !slices.IsSorted(lst.Values()) {
			t.Errorf("n=%d: list not sorted: %v", n, lst.Values())
		}
	}
}

func TestInsertThenRemoveEmpties(t *testing.T) {
	const n = 500
	rng := rand.New(rand.NewSource(1))

	var vec Vector
	insertRandom(&vec, n, rng)
	removeRandom(&vec, n, rng)
	if vec.Len() != 0 {
		t.Errorf("vector still has %d elements", vec.Len())
	}

	var lst List
	insertRandom(&lst, n, rng)
	removeRandom(&lst, n, rng)
	if lst.Len() != 0 || len(lst.Values()) != 0 {
		t.Errorf("list still has %d elements", lst.Len())
	}
}

// The two strategies must hold identical contents after inserting the
// same values, even though they place duplicates differently.
func TestStrategiesMatch(t *testing.T) {
	const n = 1000
	var vec Vector
	insertRandom(&vec, n, rand.New(rand.NewSource(7)))
	var lst List
	insertRandom(&lst, n, rand.New(rand.NewSource(7)))
	wantVals(t, lst.Values(), vec.Values())
}

func TestVectorRemoveAt(t *testing.T) {
	var vec Vector
	for _, x := range []int{5, 1, 3, 1, 4} {
		vec.InsertSorted(x)
	}
	wantVals(t, vec.Values(), []int{1, 1, 3, 4, 5})

	vec.RemoveAt(0)
	wantVals(t, vec.Values(), []int{1, 3, 4, 5})
	vec.RemoveAt(3)
	wantVals(t, vec.Values(), []int{1, 3, 4})
	vec.RemoveAt(1)
	wantVals(t, vec.Values(), []int{1, 4})
}

func TestListRemoveAt(t *testing.T) {
	var lst List
	for _, x := range []int{5, 1, 3, 1, 4} {
		lst.InsertSorted(x)
	}
	wantVals(t, lst.Values(), []int{1, 1, 3, 4, 5})

	// Head, tail, then middle, checking the links stay intact.
	lst.RemoveAt(0)
	wantVals(t, lst.Values(), []int{1, 3, 4, 5})
	lst.RemoveAt(3)
	wantVals(t, lst.Values(), []int{1, 3, 4})
	lst.RemoveAt(1)
	wantVals(t, lst.Values(), []int{1, 4})

	// The tail pointer must survive removals for appends to work.
	lst.InsertSorted(9)
	wantVals(t, lst.Values(), []int{1, 4, 9})
	lst.InsertSorted(0)
	wantVals(t, lst.Values(), []int{0, 1, 4, 9})
}
