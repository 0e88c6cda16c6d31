// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - decode a Lua configuration file into a
// struct
//
// The file is run as a Lua chunk and must return a table.  Table
// fields are matched against `gluamapper` struct tags; fields the
// table does not mention keep the values already set in the struct,
// which is how defaults are supplied.  The global arg[0] holds the
// name of the file being run.
package configuration
