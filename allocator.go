// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"cmp"
	"math"
	"sync/atomic"

	"github.com/bitmark-inc/rbtree/fault"
)

// position of a node in the arena
type index int32

// slot zero of every arena
const sentinel index = 0

// largest usable arena slot
const maxIndex = math.MaxInt32

// a node in the tree
type node[K cmp.Ordered] struct {
	key        K      // key part for ordering
	parent     index  // points to parent node, free list link when released
	left       index  // left sub-tree
	right      index  // right sub-tree
	generation uint64 // zero when released
	color      Color
}

// global statistics for all trees
var totalNodes atomic.Uint64 // total nodes created
var liveNodes atomic.Int64   // nodes currently in some tree

// Statistics - nodes allocated since start and nodes currently live
// across all trees
func Statistics() (allocated uint64, live uint64) {
	return totalNodes.Load(), uint64(liveNodes.Load())
}

// fresh arena holding only the sentinel
func newArena[K cmp.Ordered]() []node[K] {
	return []node[K]{
		sentinel: {
			parent: sentinel,
			left:   sentinel,
			right:  sentinel,
			color:  Black,
		},
	}
}

// allocate a new red node, reuses released slots if any are available
//
// nothing in the tree is modified when allocation fails
func (tree *Tree[K]) newNode(key K, parent index) (index, error) {
	if tree.limit > 0 && tree.count >= tree.limit {
		return sentinel, fault.ErrAllocationFailure
	}

	tree.generation += 1

	n := node[K]{
		key:        key,
		parent:     parent,
		left:       sentinel,
		right:      sentinel,
		generation: tree.generation,
		color:      Red,
	}

	i := tree.free
	if sentinel != i {
		tree.free = tree.nodes[i].parent
		tree.nodes[i] = n
	} else {
		if len(tree.nodes) > maxIndex {
			tree.generation -= 1
			return sentinel, fault.ErrAllocationFailure
		}
		i = index(len(tree.nodes))
		tree.nodes = append(tree.nodes, n)
	}

	totalNodes.Add(1)
	liveNodes.Add(1)
	return i, nil
}

// reclaim a node and keep it on the free list
func (tree *Tree[K]) freeNode(i index) {
	if sentinel == i {
		fault.Panic("rbtree: attempt to release the sentinel")
	}
	var zero K
	tree.nodes[i] = node[K]{
		key:    zero,
		parent: tree.free, // use as free list pointer
		left:   sentinel,
		right:  sentinel,
		color:  Black,
	}
	tree.free = i
	liveNodes.Add(-1)
}
