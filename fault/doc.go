// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Every error is a single package level value of one of the class
// types, so callers compare with == (or errors.Is when wrapped) and
// test the class with the IsErrXxx functions.  The package also owns
// the "PANIC" log channel used for a last message before aborting.
package fault
