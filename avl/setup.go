// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Tree - type to hold the root node of a tree
type Tree[K cmp.Ordered, V any] struct {
	root  *Node[K, V]
	count int
	miss  V // returned by lookups that do not find the key

	pool *Node[K, V] // linked list of reclaimed nodes
	free int        // number of nodes in the pool
}

// New - create an initially empty tree, missing keys return the
// zero value of V
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{
		root:  nil,
		count: 0,
	}
}

// NewWithDefault - create an initially empty tree where lookups of
// missing keys return the given value
func NewWithDefault[K cmp.Ordered, V any](miss V) *Tree[K, V] {
	return &Tree[K, V]{
		root:  nil,
		count: 0,
		miss:  miss,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Height - height of the whole tree, -1 if empty
func (tree *Tree[K, V]) Height() int {
	return height(tree.root)
}

// Default - the value returned when a lookup misses
func (tree *Tree[K, V]) Default() V {
	return tree.miss
}

// NodesAtDepth - returns all nodes at a specific depth below this
// node, left to right
func (p *Node[K, V]) NodesAtDepth(depth uint) []*Node[K, V] {
	nodes := []*Node[K, V]{}

	if depth == 0 {
		nodes = []*Node[K, V]{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.NodesAtDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.NodesAtDepth(depth-1)...)
		}
	}
	return nodes
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node[K, V]) Height() int {
	return p.height
}

// BalanceFactor - left height minus right height
func (p *Node[K, V]) BalanceFactor() int {
	return balanceFactor(p)
}

// Left - return the left child, or nil
func (p *Node[K, V]) Left() *Node[K, V] {
	return p.left
}

// Right - return the right child, or nil
func (p *Node[K, V]) Right() *Node[K, V] {
	return p.right
}
