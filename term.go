// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/term"
)

// A Term buffers terminal output and writes it to w on Flush.
type Term struct {
	bytes.Buffer
	w io.Writer
}

func NewTerm() *Term {
	return &Term{w: os.Stdout}
}

// IsTerminal reports whether the underlying writer is an interactive
// terminal.
func (t *Term) IsTerminal() bool {
	if f, ok := t.w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func (t *Term) BeginningOfLine() {
	t.WriteByte('\r')
}

// ClearRight clears from the cursor to the end of the line.
func (t *Term) ClearRight() {
	t.WriteString("\033[K")
}

func (t *Term) Flush() {
	t.w.Write(t.Bytes())
	t.Reset()
}
