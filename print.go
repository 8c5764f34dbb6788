// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"fmt"
	"io"
	"os"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Print - display an ASCII graphic representation of the tree on
// standard output, returns the depth of the tree
func (tree *Tree[K]) Print() int {
	return tree.Fprint(os.Stdout)
}

// Fprint - write an ASCII graphic representation of the tree
//
// the right sub-tree is drawn above its node and the left below;
// returns the depth of the tree
func (tree *Tree[K]) Fprint(w io.Writer) int {
	return tree.printTree(w, tree.root, "", rootBranch)
}

// internal print - returns the maximum depth of the tree
func (tree *Tree[K]) printTree(w io.Writer, p index, prefix string, br branch) int {
	if sentinel == p {
		return 0
	}
	n := tree.nodes[p]

	rd := 0
	ld := 0
	if sentinel != n.right {
		t := "       "
		if leftBranch == br {
			t = "|      "
		}
		rd = tree.printTree(w, n.right, prefix+t, rightBranch)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if sentinel != n.parent {
		fmt.Fprintf(w, "%v %s ^%v\n", n.key, n.color, tree.nodes[n.parent].key)
	} else {
		fmt.Fprintf(w, "%v %s\n", n.key, n.color)
	}
	if sentinel != n.left {
		t := "       "
		if rightBranch == br {
			t = "|      "
		}
		ld = tree.printTree(w, n.left, prefix+t, leftBranch)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
