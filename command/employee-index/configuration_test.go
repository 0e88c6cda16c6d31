// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
)

const validConfiguration = `
local M = {}
M.data_directory = "."
M.data_file = "staff.txt"
M.lookup = { "0001", "0002" }
M.remove = { "0002" }
M.draw = true
M.logging = {
    size = 4096,
    count = 3,
    levels = {
        DEFAULT = "debug",
    },
}
return M
`

func TestGetConfiguration(t *testing.T) {
	dir := t.TempDir()
	fileName := writeTestFile(t, dir, "index.conf", validConfiguration)

	options, err := getConfiguration(fileName)
	require.NoError(t, err, "getConfiguration")

	assert.Equal(t, filepath.Clean(dir), options.DataDirectory, "data directory")
	assert.Equal(t, filepath.Join(dir, "staff.txt"), options.DataFile, "data file")
	assert.Equal(t, []string{"0001", "0002"}, options.Lookup, "lookup")
	assert.Equal(t, []string{"0002"}, options.Remove, "remove")
	assert.True(t, options.Check, "check default")
	assert.True(t, options.Print, "print default")
	assert.True(t, options.Draw, "draw")
	assert.False(t, options.Watch, "watch")

	assert.Equal(t, 4096, options.Logging.Size, "log size")
	assert.Equal(t, 3, options.Logging.Count, "log count")
	assert.Equal(t, defaultLogFile, options.Logging.File, "log file")
	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), options.Logging.Directory, "log directory")
	assert.Equal(t, "debug", options.Logging.Levels["DEFAULT"], "default level")

	info, err := os.Stat(options.Logging.Directory)
	require.NoError(t, err, "log directory was not created")
	assert.True(t, info.IsDir(), "log directory is not a directory")

	assert.Equal(t, "info", defaultLogLevels["main"], "shared defaults modified")
	_, modified := defaultLogLevels["DEFAULT"]
	assert.False(t, modified, "shared defaults modified")
}

func TestGetConfigurationAbsoluteDataFile(t *testing.T) {
	dir := t.TempDir()
	dataFile := filepath.Join(t.TempDir(), "elsewhere.txt")
	fileName := writeTestFile(t, dir, "index.conf", `
return {
    data_directory = "`+dir+`",
    data_file = "`+dataFile+`",
}
`)

	options, err := getConfiguration(fileName)
	require.NoError(t, err, "getConfiguration")
	assert.Equal(t, dataFile, options.DataFile, "absolute data file was changed")
}

func TestGetConfigurationErrors(t *testing.T) {
	dir := t.TempDir()
	plainFile := writeTestFile(t, dir, "plain", "x")

	items := []struct {
		name     string
		config   string
		expected error
	}{
		{
			name:     "empty data directory",
			config:   `return { data_directory = "" }`,
			expected: fault.ErrInvalidDataDirectory,
		},
		{
			name:     "home data directory",
			config:   `return { data_directory = "~" }`,
			expected: fault.ErrInvalidDataDirectory,
		},
		{
			name:     "data directory is a file",
			config:   `return { data_directory = "` + plainFile + `" }`,
			expected: fault.ErrInvalidDataDirectory,
		},
		{
			name:     "no data file",
			config:   `return { data_directory = ".", data_file = "" }`,
			expected: fault.ErrRequiredDataFile,
		},
		{
			name:     "log file with directory",
			config:   `return { data_directory = ".", logging = { file = "sub/index.log" } }`,
			expected: fault.ErrNotAPlainFileName,
		},
		{
			name:     "not a table",
			config:   `return 42`,
			expected: fault.ErrConfigurationFile,
		},
	}

	for _, item := range items {
		fileName := writeTestFile(t, dir, "bad.conf", item.config)
		_, err := getConfiguration(fileName)
		assert.ErrorIs(t, err, item.expected, item.name)
	}
}

func TestGetConfigurationMissingDirectory(t *testing.T) {
	dir := t.TempDir()
	fileName := writeTestFile(t, dir, "index.conf", `return { data_directory = "`+filepath.Join(dir, "absent")+`" }`)

	_, err := getConfiguration(fileName)
	assert.True(t, os.IsNotExist(err), "unexpected error: %v", err)
}

func TestGetConfigurationLuaError(t *testing.T) {
	dir := t.TempDir()
	fileName := writeTestFile(t, dir, "index.conf", `return {`)

	_, err := getConfiguration(fileName)
	assert.Error(t, err, "syntax error not detected")
}
