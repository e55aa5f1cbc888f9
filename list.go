// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

// A List is a sorted doubly linked chain of ints. Locating any
// position costs a walk from the front, but the splice or unlink at a
// located position is O(1).
type List struct {
	head, tail *node
	size       int
}

type node struct {
	val        int
	prev, next *node
}

func (l *List) Len() int {
	return l.size
}

// InsertSorted walks from the front to the first element strictly
// greater than x and splices a new node before it, or appends at the
// end if no such element exists.
func (l *List) InsertSorted(x int) {
	at := l.head
	for at != nil && at.val <= x {
		at = at.next
	}
	l.insertBefore(&node{val: x}, at)
}

// RemoveAt walks to index i and unlinks the node there. i must be in
// [0, Len()).
func (l *List) RemoveAt(i int) {
	at := l.head
	for ; i > 0; i-- {
		at = at.next
	}
	l.unlink(at)
}

// insertBefore links n in front of at, or at the tail if at is nil.
func (l *List) insertBefore(n, at *node) {
	if at == nil {
		n.prev = l.tail
		if l.tail == nil {
			l.head = n
		} else {
			l.tail.next = n
		}
		l.tail = n
	} else {
		n.prev, n.next = at.prev, at
		if at.prev == nil {
			l.head = n
		} else {
			at.prev.next = n
		}
		at.prev = n
	}
	l.size++
}

func (l *List) unlink(n *node) {
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.prev, n.next = nil, nil
	l.size--
}

// Values returns a copy of the contents in order.
func (l *List) Values() []int {
	vals := make([]int, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		vals = append(vals, n.val)
	}
	return vals
}
