// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree mapping ordered keys to values
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height of the sub-tree rooted at it (a leaf
// is zero and a missing sub-tree counts as -1) and the balance factor
// is derived from the heights of the two children.  All restructuring
// routines return the new sub-tree root, so the caller re-attaches
// the result in place of the old link.
//
// This version allows for data associated with key, which can be
// overwritten by an insert with the same key.  Also delete does not
// copy data around, so a node obtained from Search keeps its key and
// value until that key is removed.
//
// A lookup that misses returns the tree's default value, which is
// the zero value of V unless the tree was created by NewWithDefault.
package avl
