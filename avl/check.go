// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"fmt"
	"io"
)

// Check - verify the balance, order and height of every node
//
// one line is written for each violation, nothing if the tree is
// consistent.  The order check bounds whole sub-trees, not just the
// immediate children.
func (tree *Tree[K, V]) Check(w io.Writer) bool {
	_, ok := check(w, tree.root, nil, nil)
	return ok
}

// internal: consistency checker, returns the actual height of p
func check[K cmp.Ordered, V any](w io.Writer, p *Node[K, V], low *K, high *K) (int, bool) {
	if nil == p {
		return -1, true
	}
	ok := true

	if (nil != low && cmp.Compare(p.key, *low) <= 0) || (nil != high && cmp.Compare(p.key, *high) >= 0) {
		fmt.Fprintf(w, "sort error on %v\n", p.key)
		ok = false
	}

	lh, lok := check(w, p.left, low, &p.key)
	rh, rok := check(w, p.right, &p.key, high)

	if bf := lh - rh; bf > 1 || bf < -1 {
		fmt.Fprintf(w, "Balance factor on %v is %d\n", p.key, bf)
		ok = false
	}

	h := 1 + max(lh, rh)
	if h != p.height {
		fmt.Fprintf(w, "height error on %v: cached %d actual %d\n", p.key, p.height, h)
		ok = false
	}
	return h, ok && lok && rok
}
