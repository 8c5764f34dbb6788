// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"cmp"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/rbtree/fault"
)

// Check - verify the structure and colouring of the whole tree
//
// returns nil for a consistent tree, otherwise the first problem
// found; errors.Cause gives the fault.Err… value
func (tree *Tree[K]) Check() error {
	err := tree.check()
	if nil != err && nil != tree.log {
		tree.log.Errorf("check: %s", err)
	}
	return err
}

// internal consistency checker
func (tree *Tree[K]) check() error {
	s := tree.nodes[sentinel]
	if Black != s.color || sentinel != s.parent || sentinel != s.left || sentinel != s.right {
		return errors.Wrapf(fault.ErrSentinelModified, "colour: %s  links: %d/%d/%d", s.color, s.parent, s.left, s.right)
	}

	if sentinel != tree.root {
		r := tree.nodes[tree.root]
		if Black != r.color {
			return errors.Wrapf(fault.ErrRootNotBlack, "root key: %v", r.key)
		}
		if sentinel != r.parent {
			return errors.Wrapf(fault.ErrParentLink, "root key: %v  parent slot: %d", r.key, r.parent)
		}
	}

	c := checker[K]{
		tree:     tree,
		previous: sentinel,
	}
	if _, err := c.walk(tree.root); nil != err {
		return err
	}
	if c.count != tree.count {
		return errors.Wrapf(fault.ErrCountMismatch, "reachable: %d  count: %d", c.count, tree.count)
	}
	return nil
}

// state for one in-order pass
type checker[K cmp.Ordered] struct {
	tree     *Tree[K]
	count    int
	previous index // last node visited
}

// returns the black-height of the sub-tree at p, counting the
// sentinel
func (c *checker[K]) walk(p index) (int, error) {
	if sentinel == p {
		return 1, nil
	}
	n := c.tree.nodes[p]
	if 0 == n.generation {
		return 0, errors.Wrapf(fault.ErrParentLink, "slot: %d is on the free list", p)
	}

	for _, child := range []index{n.left, n.right} {
		if sentinel == child {
			continue
		}
		if p != c.tree.nodes[child].parent {
			return 0, errors.Wrapf(fault.ErrParentLink, "key: %v  child slot: %d  points to: %d", n.key, child, c.tree.nodes[child].parent)
		}
		if Red == n.color && Red == c.tree.nodes[child].color {
			return 0, errors.Wrapf(fault.ErrRedViolation, "key: %v  red child key: %v", n.key, c.tree.nodes[child].key)
		}
	}

	lh, err := c.walk(n.left)
	if nil != err {
		return 0, err
	}

	if sentinel != c.previous && cmp.Less(n.key, c.tree.nodes[c.previous].key) {
		return 0, errors.Wrapf(fault.ErrKeyOrder, "key: %v  follows: %v", n.key, c.tree.nodes[c.previous].key)
	}
	c.previous = p
	c.count += 1

	rh, err := c.walk(n.right)
	if nil != err {
		return 0, err
	}

	if lh != rh {
		return 0, errors.Wrapf(fault.ErrBlackHeight, "key: %v  left: %d  right: %d", n.key, lh, rh)
	}
	if Black == n.color {
		return lh + 1, nil
	}
	return lh, nil
}
