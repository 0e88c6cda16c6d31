// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// upper limit on reclaimed nodes held by a single tree
const maximumFreeNodes = 256

// Node - a node in the tree
type Node[K cmp.Ordered, V any] struct {
	left   *Node[K, V] // left sub-tree
	right  *Node[K, V] // right sub-tree
	key    K           // key part for ordering
	value  V           // value part for data storage
	height int         // leaf = 0
}

// allocate a new node, reuses reclaimed nodes if any are available
func (tree *Tree[K, V]) newNode(key K, value V) *Node[K, V] {
	p := tree.pool
	if nil == p {
		if 0 != tree.free {
			panic("pool corrupt")
		}
		return &Node[K, V]{
			key:    key,
			value:  value,
			height: 0,
		}
	}
	tree.pool = p.right
	tree.free -= 1

	p.key = key
	p.value = value
	p.height = 0
	p.left = nil
	p.right = nil // ensure freelist pointer is cleared
	return p
}

// reclaim a node and keep it in the pool
func (tree *Tree[K, V]) freeNode(node *Node[K, V]) {
	var k K
	var v V

	node.left = nil
	node.right = nil
	node.key = k
	node.value = v
	node.height = 0

	if tree.free >= maximumFreeNodes {
		return
	}
	node.right = tree.pool // use as free list pointer
	tree.pool = node
	tree.free += 1
}

// Clear - drop every node, leaving an empty tree
//
// nodes are unlinked with an explicit stack so the depth of the tree
// does not affect the call stack
func (tree *Tree[K, V]) Clear() {
	stack := make([]*Node[K, V], 0, 2*(height(tree.root)+1))
	if nil != tree.root {
		stack = append(stack, tree.root)
	}
	for len(stack) > 0 {
		n := len(stack) - 1
		p := stack[n]
		stack = stack[:n]
		if nil != p.left {
			stack = append(stack, p.left)
		}
		if nil != p.right {
			stack = append(stack, p.right)
		}
		p.left = nil
		p.right = nil
	}
	tree.root = nil
	tree.count = 0
	tree.pool = nil
	tree.free = 0
}
