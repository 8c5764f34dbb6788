// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rbtree - a red-black balanced tree of ordered keys with
// parent links to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.  Find, Min, Max, Check and iteration only read the
//       tree; Insert, Erase, Delete and Destroy modify it.
//
// The algorithm follows Cormen, Leiserson, Rivest and Stein,
// Introduction to Algorithms, with a single black sentinel standing
// in for every absent child and for the parent of the root.
//
// Nodes are held in a per-tree arena and addressed by index, so
// rotations only rewrite index fields.  Released nodes go onto a
// free list and are reused by later inserts.  The sentinel occupies
// slot zero and is never written after the tree is created.
//
// Keys are ordered by cmp.Compare, so a NaN float key sorts below
// every other value and only matches another NaN.
//
// Keys equal to an existing key are kept as duplicates and placed to
// the right, so duplicates iterate in insertion order.
package rbtree
