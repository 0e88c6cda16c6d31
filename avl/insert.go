// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Insert - insert a new node into the tree, or overwrite the value
// of an existing key
//
// returns true if a new node was added
func (tree *Tree[K, V]) Insert(key K, value V) bool {
	added := false
	tree.root, added = tree.insert(key, value, tree.root)
	fixHeight(tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert, returns the possibly updated sub-tree root
func (tree *Tree[K, V]) insert(key K, value V, p *Node[K, V]) (*Node[K, V], bool) {
	if nil == p { // insert new node
		return tree.newNode(key, value), true
	}
	added := false
	switch cmp.Compare(key, p.key) {
	case -1: // key < p.key
		p.left, added = tree.insert(key, value, p.left)
	case +1: // key > p.key
		p.right, added = tree.insert(key, value, p.right)
	default:
		// same key: only the data changes
		p.value = value
		return p, false
	}
	fixHeight(p)
	return rotate(p), added
}
