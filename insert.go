// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"cmp"
)

// Insert - insert a new node into the tree
// returns the possibly updated root
//
// an equal key does not replace an existing one, it is added to the
// right of it
func (tree *Tree[K]) Insert(key K) (Node[K], error) {
	_, err := tree.insert(key)
	if nil != err {
		return Node[K]{}, err
	}
	return tree.handle(tree.root), nil
}

// InsertNode - insert a new node into the tree and return it
func (tree *Tree[K]) InsertNode(key K) (Node[K], error) {
	z, err := tree.insert(key)
	if nil != err {
		return Node[K]{}, err
	}
	return tree.handle(z), nil
}

// internal routine for insert
func (tree *Tree[K]) insert(key K) (index, error) {
	parent := sentinel
	for p := tree.root; sentinel != p; {
		parent = p
		if cmp.Less(key, tree.nodes[p].key) {
			p = tree.nodes[p].left
		} else {
			p = tree.nodes[p].right
		}
	}

	// allocation may grow the arena, so no node pointers are held
	// across it
	z, err := tree.newNode(key, parent)
	if nil != err {
		return sentinel, err
	}

	switch {
	case sentinel == parent:
		tree.root = z
	case cmp.Less(key, tree.nodes[parent].key):
		tree.setLeft(parent, z)
	default:
		tree.setRight(parent, z)
	}
	tree.count += 1

	tree.insertFixup(z)
	return z, nil
}

// restore the colour rules after red node z was linked in
//
// on entry to each pass only "z and its parent are both red" can be
// violated
func (tree *Tree[K]) insertFixup(z index) {
	for Red == tree.nodes[tree.nodes[z].parent].color {
		parent := tree.nodes[z].parent
		grandparent := tree.nodes[parent].parent

		if parent == tree.nodes[grandparent].left {
			uncle := tree.nodes[grandparent].right

			// case 1: red uncle, push the conflict up
			if Red == tree.nodes[uncle].color {
				tree.setColor(parent, Black)
				tree.setColor(uncle, Black)
				tree.setColor(grandparent, Red)
				z = grandparent
				continue
			}

			// case 2: inner child, rotate into the outer shape
			if z == tree.nodes[parent].right {
				z = parent
				tree.rotateLeft(z)
				parent = tree.nodes[z].parent
			}

			// case 3: outer child
			tree.setColor(parent, Black)
			tree.setColor(grandparent, Red)
			tree.rotateRight(grandparent)

		} else {
			uncle := tree.nodes[grandparent].left

			if Red == tree.nodes[uncle].color {
				tree.setColor(parent, Black)
				tree.setColor(uncle, Black)
				tree.setColor(grandparent, Red)
				z = grandparent
				continue
			}

			if z == tree.nodes[parent].left {
				z = parent
				tree.rotateRight(z)
				parent = tree.nodes[z].parent
			}

			tree.setColor(parent, Black)
			tree.setColor(grandparent, Red)
			tree.rotateLeft(grandparent)
		}
	}

	// case 1 may have coloured the root red
	tree.setColor(tree.root, Black)
}
