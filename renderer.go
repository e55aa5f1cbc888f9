// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "fmt"

type Renderer interface {
	// Status shows a transient progress message. The caller must call
	// cleanup before the next Result.
	Status(msg string) (cleanup func())
	// Result emits the finished line for one problem size.
	Result(res result)
}

type termRenderer struct {
	term *Term
	tty  bool
}

func NewTermRenderer(term *Term) *termRenderer {
	return &termRenderer{term: term, tty: term.IsTerminal()}
}

func (r *termRenderer) Status(msg string) (cleanup func()) {
	// A status line is only useful (and only safe to erase) on an
	// interactive terminal. Piped output stays machine-readable.
	if !r.tty {
		return func() {}
	}
	r.term.WriteString(msg)
	r.term.Flush()
	return func() {
		r.term.BeginningOfLine()
		r.term.ClearRight()
		r.term.Flush()
	}
}

func (r *termRenderer) Result(res result) {
	fmt.Fprintf(r.term, "%s\n", res)
	r.term.Flush()
}
