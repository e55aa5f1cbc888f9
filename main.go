// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

// defaultSizes is the list of problem sizes benchmarked, in order.
var defaultSizes = []int{100, 1000, 10000, 30000, 100000}

func main() {
	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	run(NewTermRenderer(NewTerm()), defaultSizes, rng)
}

// run benchmarks every size in order. All phases share rng, so for a
// given seed the draw sequence is deterministic even though the values
// consumed by the two strategies differ.
func run(r Renderer, sizes []int, rng *rand.Rand) {
	for _, n := range sizes {
		cleanup := r.Status(fmt.Sprintf("running N=%d...", n))
		res := benchmark(n, rng)
		cleanup()
		r.Result(res)
	}
}
