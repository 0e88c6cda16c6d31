// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package records

import (
	"strings"
)

// field separator between name and id
const separator = ","

// ParseLine - split a record into its id and name
//
// ok is false when the line has no separator, in which case the id
// is the whole line and the name is empty
func ParseLine(line string) (id string, name string, ok bool) {
	name, id, ok = strings.Cut(line, separator)
	if !ok {
		return line, "", false
	}
	return id, name, true
}
