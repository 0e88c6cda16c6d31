// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"fmt"
	"io"
)

// to control the draw routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - write every item as "key, value" one per line in ascending
// key order
func (tree *Tree[K, V]) Print(w io.Writer) error {
	for key, value := range tree.All() {
		if _, err := fmt.Fprintf(w, "%v, %v\n", key, value); nil != err {
			return err
		}
	}
	return nil
}

// Draw - display an ASCII graphic representation of the tree
// returns the number of levels
func (tree *Tree[K, V]) Draw(w io.Writer, printData bool) int {
	return drawTree(w, tree.root, "", root, printData)
}

// internal draw - returns the maximum depth of the tree
func drawTree[K cmp.Ordered, V any](w io.Writer, tree *Node[K, V], prefix string, br branch, printData bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = drawTree(w, tree.right, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if printData {
		fmt.Fprintf(w, "%v → %v h:%d %+2d\n", tree.key, tree.value, tree.height, balanceFactor(tree))
	} else {
		fmt.Fprintf(w, "%v\n", tree.key)
	}
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = drawTree(w, tree.left, prefix+t, left, printData)
	}
	if rd > ld {
		return 1 + rd
	} else {
		return 1 + ld
	}
}
