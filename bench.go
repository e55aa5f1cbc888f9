// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

// valueBound is the inclusive upper bound on inserted values.
const valueBound = 1000000

// sequence is the capability shared by the two strategies. It's used
// only as a type constraint, so the strategy is chosen at compile time.
type sequence interface {
	Len() int
	InsertSorted(x int)
	RemoveAt(i int)
}

// insertRandom draws n uniform values in [0, valueBound] and inserts
// each at its sorted position.
func insertRandom[S sequence](s S, n int, rng *rand.Rand) {
	for i := 0; i < n; i++ {
		s.InsertSorted(rng.Intn(valueBound + 1))
	}
}

// removeRandom removes n elements, each at a uniformly chosen index of
// the current contents. The caller guarantees n does not exceed the
// sequence's size on entry.
func removeRandom[S sequence](s S, n int, rng *rand.Rand) {
	for i := 0; i < n; i++ {
		s.RemoveAt(rng.Intn(s.Len()))
	}
}

// measure returns the wall-clock time fn takes. The end timestamp is
// taken immediately after fn returns.
func measure(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

// result reports the combined insert+remove time of both strategies
// for one problem size.
type result struct {
	n      int
	vector time.Duration
	list   time.Duration
}

// ratio is the list time divided by the vector time, computed from the
// reported microsecond counts. Division by a zero vector time is not
// guarded; the quotient is whatever IEEE 754 produces.
func (r result) ratio() float64 {
	return float64(r.list.Microseconds()) / float64(r.vector.Microseconds())
}

func (r result) String() string {
	return fmt.Sprintf("N=%d vector=%d list=%d list/vector=%v",
		r.n, r.vector.Microseconds(), r.list.Microseconds(), r.ratio())
}

// benchmark times the two strategies for one size. Each strategy gets
// a fresh sequence; the vector run fully completes, timing included,
// before the list run starts, so the shared rng's draw order is fixed.
func benchmark(n int, rng *rand.Rand) result {
	res := result{n: n}

	var vec Vector
	res.vector = measure(func() {
		insertRandom(&vec, n, rng)
		removeRandom(&vec, n, rng)
	})

	var lst List
	res.list = measure(func() {
		insertRandom(&lst, n, rng)
		removeRandom(&lst, n, rng)
	})

	return res
}
