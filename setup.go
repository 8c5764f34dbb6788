// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"cmp"

	"github.com/bitmark-inc/logger"
)

// Tree - type to hold the node arena and root of a tree
type Tree[K cmp.Ordered] struct {
	nodes      []node[K] // arena, slot zero is the sentinel
	free       index     // head of the released slot list
	root       index
	count      int
	limit      int    // maximum live nodes, zero for no limit
	generation uint64 // last generation handed out
	log        *logger.L
}

// New - create an initially empty tree
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{
		nodes: newArena[K](),
		free:  sentinel,
		root:  sentinel,
		count: 0,
	}
}

// NewLimited - create an initially empty tree that refuses to hold
// more than limit nodes, a limit of zero or less means no limit
func NewLimited[K cmp.Ordered](limit int) *Tree[K] {
	tree := New[K]()
	if limit > 0 {
		tree.limit = limit
	}
	return tree
}

// SetLog - attach a logging channel, nil detaches
func (tree *Tree[K]) SetLog(log *logger.L) {
	tree.log = log
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K]) IsEmpty() bool {
	return sentinel == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K]) Count() int {
	return tree.count
}

// Root - return the root node of the tree, the zero Node if empty
func (tree *Tree[K]) Root() Node[K] {
	return tree.handle(tree.root)
}

// Destroy - release every node and the sentinel
//
// nodes are released children first, each exactly once; the tree is
// left empty with a fresh sentinel and all previously obtained nodes
// become invalid.  Returns the number of nodes released.
func (tree *Tree[K]) Destroy() int {
	released := 0

	// iterative post-order walk
	stack := make([]index, 0, 64)
	last := sentinel
	p := tree.root
	for sentinel != p || len(stack) > 0 {
		if sentinel != p {
			stack = append(stack, p)
			p = tree.nodes[p].left
			continue
		}
		top := stack[len(stack)-1]
		right := tree.nodes[top].right
		if sentinel != right && last != right {
			p = right
			continue
		}
		stack = stack[:len(stack)-1]
		tree.freeNode(top)
		released += 1
		last = top
	}

	if nil != tree.log {
		tree.log.Debugf("destroy: released: %d nodes  expected: %d", released, tree.count)
	}

	// drop the arena, sentinel included
	tree.nodes = newArena[K]()
	tree.free = sentinel
	tree.root = sentinel
	tree.count = 0

	return released
}
