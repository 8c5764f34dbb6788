// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"cmp"
)

// Color - the colour of a node
type Color uint8

// node colours
const (
	Red Color = iota
	Black
)

// String - name of a colour
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}

// Node - a reference to a node inside a specific tree
//
// the zero value refers to no node; a node stays valid until it is
// erased or its tree is destroyed
type Node[K cmp.Ordered] struct {
	tree       *Tree[K]
	index      index
	generation uint64
}

// internal: handle for an arena slot, sentinel gives the zero Node
func (tree *Tree[K]) handle(i index) Node[K] {
	if sentinel == i {
		return Node[K]{}
	}
	return Node[K]{
		tree:       tree,
		index:      i,
		generation: tree.nodes[i].generation,
	}
}

// internal: true if the node is live in this tree
func (tree *Tree[K]) owns(n Node[K]) bool {
	if tree != n.tree || sentinel == n.index || int(n.index) >= len(tree.nodes) {
		return false
	}
	g := tree.nodes[n.index].generation
	return 0 != g && g == n.generation
}

// Valid - true if the node still refers to a node in a tree
func (n Node[K]) Valid() bool {
	return nil != n.tree && n.tree.owns(n)
}

// Key - read the key from a node
func (n Node[K]) Key() K {
	if !n.Valid() {
		var zero K
		return zero
	}
	return n.tree.nodes[n.index].key
}

// Color - read the colour of a node, invalid nodes read as black
// like the sentinel
func (n Node[K]) Color() Color {
	if !n.Valid() {
		return Black
	}
	return n.tree.nodes[n.index].color
}

// Parent - return parent node of a node
func (n Node[K]) Parent() Node[K] {
	if !n.Valid() {
		return Node[K]{}
	}
	return n.tree.handle(n.tree.nodes[n.index].parent)
}

// Left - return the root of the left sub-tree
func (n Node[K]) Left() Node[K] {
	if !n.Valid() {
		return Node[K]{}
	}
	return n.tree.handle(n.tree.nodes[n.index].left)
}

// Right - return the root of the right sub-tree
func (n Node[K]) Right() Node[K] {
	if !n.Valid() {
		return Node[K]{}
	}
	return n.tree.handle(n.tree.nodes[n.index].right)
}

// Depth - get the depth of a node, the root is at depth zero
func (n Node[K]) Depth() uint {
	if !n.Valid() {
		return 0
	}
	count := uint(0)
	parent := n.tree.nodes[n.index].parent
	for sentinel != parent {
		count += 1
		parent = n.tree.nodes[parent].parent
	}
	return count
}
