// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// height of a possibly missing sub-tree
func height[K cmp.Ordered, V any](p *Node[K, V]) int {
	if nil == p {
		return -1
	}
	return p.height
}

// left height minus right height
func balanceFactor[K cmp.Ordered, V any](p *Node[K, V]) int {
	return height(p.left) - height(p.right)
}

// recompute a single node from its children
func fixHeight[K cmp.Ordered, V any](p *Node[K, V]) {
	p.height = 1 + max(height(p.left), height(p.right))
}

// recompute every node of a sub-tree, children before parents
func fixHeights[K cmp.Ordered, V any](p *Node[K, V]) {
	stack := []*Node[K, V]{}
	var last *Node[K, V]
	for nil != p || len(stack) > 0 {
		if nil != p {
			stack = append(stack, p)
			p = p.left
			continue
		}
		top := stack[len(stack)-1]
		if nil != top.right && last != top.right {
			p = top.right
			continue
		}
		fixHeight(top)
		last = top
		stack = stack[:len(stack)-1]
	}
}

// restore the balance at p, returns the new sub-tree root
//
// the children of p must already be balanced with correct heights
func rotate[K cmp.Ordered, V any](p *Node[K, V]) *Node[K, V] {
	for {
		bf := balanceFactor(p)
		switch {
		case bf < -1: // right heavy
			if balanceFactor(p.right) > 0 {
				// double RL rotation
				p.right = leftLeft(p.right)
			}
			p = rightRight(p)
		case bf > 1: // left heavy
			if balanceFactor(p.left) < 0 {
				// double LR rotation
				p.left = rightRight(p.left)
			}
			p = leftLeft(p)
		default:
			return p
		}
	}
}

// single RR rotation: promote the right child
func rightRight[K cmp.Ordered, V any](p *Node[K, V]) *Node[K, V] {
	p1 := p.right
	p.right = p1.left
	p1.left = p

	// only p and p1 have moved
	fixHeight(p)
	fixHeight(p1)
	return p1
}

// single LL rotation: promote the left child
func leftLeft[K cmp.Ordered, V any](p *Node[K, V]) *Node[K, V] {
	p1 := p.left
	p.left = p1.right
	p1.right = p

	fixHeight(p)
	fixHeight(p1)
	return p1
}

// Repair - recompute all heights and, if any node is then out of
// balance, rebuild the whole tree into balanced shape
//
// the key order must already be correct; a tree that is balanced
// after the heights are recomputed keeps its shape and node order
func (tree *Tree[K, V]) Repair() {
	fixHeights(tree.root)
	nodes := inOrder(tree.root)
	tree.count = len(nodes)
	for _, p := range nodes {
		if bf := balanceFactor(p); bf > 1 || bf < -1 {
			tree.root = build(nodes)
			return
		}
	}
}

// all nodes of a sub-tree in ascending key order
func inOrder[K cmp.Ordered, V any](p *Node[K, V]) []*Node[K, V] {
	nodes := []*Node[K, V]{}
	stack := []*Node[K, V]{}
	for nil != p || len(stack) > 0 {
		for nil != p {
			stack = append(stack, p)
			p = p.left
		}
		p = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes = append(nodes, p)
		p = p.right
	}
	return nodes
}

// relink sorted nodes around their midpoints, returns the new root
//
// the two halves of any range differ in size by at most one so every
// node is balanced, and recursion depth is the height of the result
func build[K cmp.Ordered, V any](nodes []*Node[K, V]) *Node[K, V] {
	if 0 == len(nodes) {
		return nil
	}
	m := len(nodes) / 2
	p := nodes[m]
	p.left = build(nodes[:m])
	p.right = build(nodes[m+1:])
	fixHeight(p)
	return p
}
