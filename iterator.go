// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"iter"
)

// Next - given a node, return the node with the next highest key
// value or the zero Node if no more nodes.
func (n Node[K]) Next() Node[K] {
	if !n.Valid() {
		return Node[K]{}
	}
	return n.tree.handle(n.tree.next(n.index))
}

// Prev - given a node, return the node with the next lowest key
// value or the zero Node if no more nodes
func (n Node[K]) Prev() Node[K] {
	if !n.Valid() {
		return Node[K]{}
	}
	return n.tree.handle(n.tree.prev(n.index))
}

// internal: in-order successor by way of the parent links
//
// climbs while coming up from a right child, which stays correct
// when keys are duplicated
func (tree *Tree[K]) next(p index) index {
	if r := tree.nodes[p].right; sentinel != r {
		return tree.first(r)
	}
	up := tree.nodes[p].parent
	for sentinel != up && p == tree.nodes[up].right {
		p = up
		up = tree.nodes[up].parent
	}
	return up
}

// internal: in-order predecessor
func (tree *Tree[K]) prev(p index) index {
	if l := tree.nodes[p].left; sentinel != l {
		return tree.last(l)
	}
	up := tree.nodes[p].parent
	for sentinel != up && p == tree.nodes[up].left {
		p = up
		up = tree.nodes[up].parent
	}
	return up
}

// All - sequence of all keys in ascending order
//
// each range over the result starts again from the lowest key; the
// tree must not be modified while a range is in progress
func (tree *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for p := tree.first(tree.root); sentinel != p; p = tree.next(p) {
			if !yield(tree.nodes[p].key) {
				return
			}
		}
	}
}

// Backward - sequence of all keys in descending order
func (tree *Tree[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		for p := tree.last(tree.root); sentinel != p; p = tree.prev(p) {
			if !yield(tree.nodes[p].key) {
				return
			}
		}
	}
}

// Keys - all keys in ascending order
func (tree *Tree[K]) Keys() []K {
	keys := make([]K, tree.count)
	n := tree.ToArray(keys)
	return keys[:n]
}

// ToArray - copy keys in ascending order into buffer, stopping when
// the buffer is full; returns the number of keys written
func (tree *Tree[K]) ToArray(buffer []K) int {
	n := 0
	for p := tree.first(tree.root); sentinel != p && n < len(buffer); p = tree.next(p) {
		buffer[n] = tree.nodes[p].key
		n += 1
	}
	return n
}
