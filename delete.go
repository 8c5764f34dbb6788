// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/rbtree/fault"
)

// Delete - remove the earliest inserted node holding key
func (tree *Tree[K]) Delete(key K) error {
	z := tree.search(key)
	if sentinel == z {
		return fault.ErrKeyNotFound
	}
	tree.erase(z)
	return nil
}

// Erase - remove a specific node from the tree
//
// the node must have come from this tree and not have been erased;
// otherwise nothing is changed and ErrForeignNode is returned
func (tree *Tree[K]) Erase(n Node[K]) error {
	if !tree.owns(n) {
		return fault.ErrForeignNode
	}
	tree.erase(n.index)
	return nil
}

// replace the sub-tree at u by the one at v, u keeps its own links
func (tree *Tree[K]) transplant(u index, v index) {
	p := tree.nodes[u].parent
	tree.replaceChild(p, u, v)
	if sentinel != v {
		tree.setParent(v, p)
	}
}

// leftmost node of the right sub-tree of a node that has one
func (tree *Tree[K]) successor(target index) index {
	p := tree.nodes[target].right
	if sentinel == p {
		fault.Panicf("rbtree: successor of: %d without right sub-tree", target)
	}
	return tree.first(p)
}

// internal routine for delete
func (tree *Tree[K]) erase(z index) {
	removedColor := tree.nodes[z].color

	// x takes the place of the removed node; it may be the sentinel,
	// so its parent is tracked here rather than written into it
	var x, xParent index

	switch {
	case sentinel == tree.nodes[z].left:
		x = tree.nodes[z].right
		xParent = tree.nodes[z].parent
		tree.transplant(z, x)

	case sentinel == tree.nodes[z].right:
		x = tree.nodes[z].left
		xParent = tree.nodes[z].parent
		tree.transplant(z, x)

	default:
		y := tree.successor(z)
		removedColor = tree.nodes[y].color
		x = tree.nodes[y].right

		if z == tree.nodes[y].parent {
			xParent = y
		} else {
			xParent = tree.nodes[y].parent
			tree.transplant(y, x)
			right := tree.nodes[z].right
			tree.setRight(y, right)
			tree.setParent(right, y)
		}

		tree.transplant(z, y)
		left := tree.nodes[z].left
		tree.setLeft(y, left)
		tree.setParent(left, y)
		tree.setColor(y, tree.nodes[z].color)
	}

	// removing a red node cannot change any black-height
	if Black == removedColor {
		tree.eraseFixup(x, xParent)
	}

	if nil != tree.log {
		tree.log.Tracef("erase: slot: %d  colour: %s  count: %d", z, removedColor, tree.count-1)
	}

	tree.freeNode(z)
	tree.count -= 1
}

// restore equal black-heights after a black node was removed
//
// x carries one extra black; parent is the parent of x, which is
// needed when x is the sentinel
func (tree *Tree[K]) eraseFixup(x index, parent index) {
	for x != tree.root && Black == tree.nodes[x].color {

		if x == tree.nodes[parent].left {
			sibling := tree.nodes[parent].right

			// case 1: red sibling, rotate so the sibling is black
			if Red == tree.nodes[sibling].color {
				tree.setColor(sibling, Black)
				tree.setColor(parent, Red)
				tree.rotateLeft(parent)
				sibling = tree.nodes[parent].right
			}

			near := tree.nodes[sibling].left
			far := tree.nodes[sibling].right

			// case 2: both nephews black, move the extra black up
			if Black == tree.nodes[near].color && Black == tree.nodes[far].color {
				tree.setColor(sibling, Red)
				x = parent
				parent = tree.nodes[x].parent
				continue
			}

			// case 3: only the near nephew red, turn it into case 4
			if Black == tree.nodes[far].color {
				tree.setColor(near, Black)
				tree.setColor(sibling, Red)
				tree.rotateRight(sibling)
				sibling = tree.nodes[parent].right
				far = tree.nodes[sibling].right
			}

			// case 4: far nephew red, one rotation absorbs the extra black
			tree.setColor(sibling, tree.nodes[parent].color)
			tree.setColor(parent, Black)
			tree.setColor(far, Black)
			tree.rotateLeft(parent)
			x = tree.root

		} else {
			sibling := tree.nodes[parent].left

			if Red == tree.nodes[sibling].color {
				tree.setColor(sibling, Black)
				tree.setColor(parent, Red)
				tree.rotateRight(parent)
				sibling = tree.nodes[parent].left
			}

			near := tree.nodes[sibling].right
			far := tree.nodes[sibling].left

			if Black == tree.nodes[near].color && Black == tree.nodes[far].color {
				tree.setColor(sibling, Red)
				x = parent
				parent = tree.nodes[x].parent
				continue
			}

			if Black == tree.nodes[far].color {
				tree.setColor(near, Black)
				tree.setColor(sibling, Red)
				tree.rotateLeft(sibling)
				sibling = tree.nodes[parent].left
				far = tree.nodes[sibling].left
			}

			tree.setColor(sibling, tree.nodes[parent].color)
			tree.setColor(parent, Black)
			tree.setColor(far, Black)
			tree.rotateRight(parent)
			x = tree.root
		}
	}

	// a red x or the root absorbs the extra black; the sentinel is
	// black already
	if sentinel != x {
		tree.setColor(x, Black)
	}
}
