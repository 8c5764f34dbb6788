// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/rbtree/fault"
)

// all node writes go through these so the sentinel stays read-only

func (tree *Tree[K]) setColor(i index, c Color) {
	if sentinel == i {
		fault.Panicf("rbtree: set colour: %s on sentinel", c)
	}
	tree.nodes[i].color = c
}

func (tree *Tree[K]) setParent(i index, p index) {
	if sentinel == i {
		fault.Panic("rbtree: set parent on sentinel")
	}
	tree.nodes[i].parent = p
}

func (tree *Tree[K]) setLeft(i index, l index) {
	if sentinel == i {
		fault.Panic("rbtree: set left on sentinel")
	}
	tree.nodes[i].left = l
}

func (tree *Tree[K]) setRight(i index, r index) {
	if sentinel == i {
		fault.Panic("rbtree: set right on sentinel")
	}
	tree.nodes[i].right = r
}

// make c the child of p in place of old, or the root if p is the
// sentinel; old is matched by identity
func (tree *Tree[K]) replaceChild(p index, old index, c index) {
	switch {
	case sentinel == p:
		tree.root = c
	case old == tree.nodes[p].left:
		tree.setLeft(p, c)
	default:
		tree.setRight(p, c)
	}
}

// promote the right child of x into the position of x
//
//	    x               y
//	   / \             / \
//	  a   y    →      x   c
//	     / \         / \
//	    b   c       a   b
func (tree *Tree[K]) rotateLeft(x index) {
	y := tree.nodes[x].right
	if sentinel == y {
		fault.Panicf("rbtree: rotate left at: %d without right child", x)
	}

	b := tree.nodes[y].left
	tree.setRight(x, b)
	if sentinel != b {
		tree.setParent(b, x)
	}

	p := tree.nodes[x].parent
	tree.setParent(y, p)
	tree.replaceChild(p, x, y)

	tree.setLeft(y, x)
	tree.setParent(x, y)
}

// promote the left child of x into the position of x
//
//	      x           y
//	     / \         / \
//	    y   c  →    a   x
//	   / \             / \
//	  a   b           b   c
func (tree *Tree[K]) rotateRight(x index) {
	y := tree.nodes[x].left
	if sentinel == y {
		fault.Panicf("rbtree: rotate right at: %d without left child", x)
	}

	b := tree.nodes[y].right
	tree.setLeft(x, b)
	if sentinel != b {
		tree.setParent(b, x)
	}

	p := tree.nodes[x].parent
	tree.setParent(y, p)
	tree.replaceChild(p, x, y)

	tree.setRight(y, x)
	tree.setParent(x, y)
}
