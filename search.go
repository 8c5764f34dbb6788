// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"cmp"

	"github.com/bitmark-inc/rbtree/fault"
)

// Find - find the node holding key
//
// if the key was inserted more than once the earliest insertion is
// returned
func (tree *Tree[K]) Find(key K) (Node[K], error) {
	p := tree.search(key)
	if sentinel == p {
		return Node[K]{}, fault.ErrKeyNotFound
	}
	return tree.handle(p), nil
}

// internal: leftmost node equal to key, or sentinel
func (tree *Tree[K]) search(key K) index {
	found := sentinel
	p := tree.root
	for sentinel != p {
		switch c := cmp.Compare(key, tree.nodes[p].key); {
		case c < 0:
			p = tree.nodes[p].left
		case c > 0:
			p = tree.nodes[p].right
		default:
			// duplicates sit to the right, keep looking left
			found = p
			p = tree.nodes[p].left
		}
	}
	return found
}

// Min - return the node with the lowest key value
func (tree *Tree[K]) Min() (Node[K], error) {
	if sentinel == tree.root {
		return Node[K]{}, fault.ErrEmptyTree
	}
	return tree.handle(tree.first(tree.root)), nil
}

// Max - return the node with the highest key value
func (tree *Tree[K]) Max() (Node[K], error) {
	if sentinel == tree.root {
		return Node[K]{}, fault.ErrEmptyTree
	}
	return tree.handle(tree.last(tree.root)), nil
}

// internal: lowest node in a sub-tree
func (tree *Tree[K]) first(p index) index {
	if sentinel == p {
		return sentinel
	}
	for sentinel != tree.nodes[p].left {
		p = tree.nodes[p].left
	}
	return p
}

// internal: highest node in a sub-tree
func (tree *Tree[K]) last(p index) index {
	if sentinel == p {
		return sentinel
	}
	for sentinel != tree.nodes[p].right {
		p = tree.nodes[p].right
	}
	return p
}

// Height - number of nodes on the longest path from the root to a
// leaf, zero for an empty tree
func (tree *Tree[K]) Height() int {
	return tree.height(tree.root)
}

func (tree *Tree[K]) height(p index) int {
	if sentinel == p {
		return 0
	}
	l := tree.height(tree.nodes[p].left)
	r := tree.height(tree.nodes[p].right)
	if l > r {
		return 1 + l
	}
	return 1 + r
}

// BlackHeight - black nodes on the path from the root to a sentinel,
// not counting the root and counting the sentinel
//
// all paths give the same value in a consistent tree; zero for an
// empty tree
func (tree *Tree[K]) BlackHeight() int {
	if sentinel == tree.root {
		return 0
	}
	count := 0
	for p := tree.nodes[tree.root].left; ; p = tree.nodes[p].left {
		if Black == tree.nodes[p].color {
			count += 1
		}
		if sentinel == p {
			return count
		}
	}
}
