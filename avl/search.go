// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Search - find a specific item, nil if not present
func (tree *Tree[K, V]) Search(key K) *Node[K, V] {
	return search(key, tree.root)
}

func search[K cmp.Ordered, V any](key K, tree *Node[K, V]) *Node[K, V] {
	if nil == tree {
		return nil
	}

	switch cmp.Compare(key, tree.key) {
	case -1: // key < tree.key
		return search(key, tree.left)
	case +1: // key > tree.key
		return search(key, tree.right)
	default:
		return tree
	}
}

// Lookup - the value stored for key, or the default value if the key
// is not in the tree
func (tree *Tree[K, V]) Lookup(key K) V {
	p := search(key, tree.root)
	if nil == p {
		return tree.miss
	}
	return p.value
}

// Get - same as Lookup
func (tree *Tree[K, V]) Get(key K) V {
	return tree.Lookup(key)
}

// Has - true if the key is present
func (tree *Tree[K, V]) Has(key K) bool {
	return nil != search(key, tree.root)
}
