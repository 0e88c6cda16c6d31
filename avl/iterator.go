// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
)

// First - return the node with the lowest key value
func (tree *Tree[K, V]) First() *Node[K, V] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node[K, V]) first() *Node[K, V] {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func (tree *Tree[K, V]) Last() *Node[K, V] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node[K, V]) last() *Node[K, V] {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// All - every key and value in ascending key order
//
// the tree must not be modified until the iteration finishes
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		tree.root.walk(yield)
	}
}

// Keys - every key in ascending order
func (tree *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		tree.root.walk(func(key K, _ V) bool {
			return yield(key)
		})
	}
}

// internal: in-order traversal, false once yield asks to stop
func (tree *Node[K, V]) walk(yield func(K, V) bool) bool {
	if tree == nil {
		return true
	}
	return tree.left.walk(yield) &&
		yield(tree.key, tree.value) &&
		tree.right.walk(yield)
}
