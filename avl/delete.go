// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Remove - removes a specific item from the tree
//
// returns the removed value and true, or the default value and false
// if the key was not present
func (tree *Tree[K, V]) Remove(key K) (V, bool) {
	root, q := remove(key, tree.root)
	if nil == q { // key not in tree
		return tree.miss, false
	}
	tree.root = root
	tree.count -= 1

	value := q.value // preserve the value part
	tree.freeNode(q) // return deleted node to pool
	return value, true
}

// internal delete routine, returns the new sub-tree root and the
// detached node (nil if key was not found)
func remove[K cmp.Ordered, V any](key K, p *Node[K, V]) (*Node[K, V], *Node[K, V]) {
	if nil == p {
		return nil, nil
	}
	q := (*Node[K, V])(nil)
	switch cmp.Compare(key, p.key) {
	case -1: // key < p.key
		p.left, q = remove(key, p.left)
	case +1: // key > p.key
		p.right, q = remove(key, p.right)
	default: // found: delete p
		return splice(p), p
	}
	if nil == q {
		return p, nil
	}
	fixHeight(p)
	return rotate(p), q
}

// delete: rearrange around the deleted node, returns the sub-tree
// that takes its place
func splice[K cmp.Ordered, V any](q *Node[K, V]) *Node[K, V] {
	r := (*Node[K, V])(nil)
	switch {
	case nil == q.left && nil == q.right: // leaf
		return nil

	case nil != q.left && nil == q.left.right:
		// left child is the predecessor
		r = q.left
		r.right = q.right

	case nil != q.left:
		// predecessor is further down the right spine of q.left
		rest := (*Node[K, V])(nil)
		rest, r = detachLast(q.left)
		r.left = rest
		r.right = q.right

	case nil == q.right.left:
		// right child is the successor
		r = q.right
		r.left = q.left

	default:
		rest := (*Node[K, V])(nil)
		rest, r = detachFirst(q.right)
		r.left = q.left
		r.right = rest
	}
	q.left = nil
	q.right = nil

	fixHeight(r)
	return rotate(r)
}

// detach the highest node of a sub-tree, its left remainder takes
// its place, returns the rebalanced sub-tree and the detached node
func detachLast[K cmp.Ordered, V any](p *Node[K, V]) (*Node[K, V], *Node[K, V]) {
	if nil == p.right {
		rest := p.left
		p.left = nil
		return rest, p
	}
	last := (*Node[K, V])(nil)
	p.right, last = detachLast(p.right)
	fixHeight(p)
	return rotate(p), last
}

// detach the lowest node of a sub-tree, mirror of detachLast
func detachFirst[K cmp.Ordered, V any](p *Node[K, V]) (*Node[K, V], *Node[K, V]) {
	if nil == p.left {
		rest := p.right
		p.right = nil
		return rest, p
	}
	first := (*Node[K, V])(nil)
	p.left, first = detachFirst(p.left)
	fixHeight(p)
	return rotate(p), first
}
