// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package records - load "name,id" employee records into a store
//
// Each line holds one record.  The first comma separates the name
// from the id, so the id is everything after the first comma and may
// itself contain further commas.  A line without any comma becomes a
// record whose id is the whole line and whose name is empty.
//
// Records are inserted keyed by id with the name as the value.
//
// Blank lines (including a lone "\r") are not records: they are
// counted in Stats.Empty and never reach the store, so a file ending
// in newlines does not add an empty id.
package records
