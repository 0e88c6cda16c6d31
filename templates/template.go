// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package templates

const (
	/**** Configuration template ****/
	ConfigurationTemplate = `-- employee-index.conf  -*- mode: lua -*-

local M = {}

-- "." means the same directory as this file
M.data_directory = "{{.DataDirectory}}"

-- one "name,id" record per line, split at the first comma
M.data_file = "{{.DataFile}}"

-- returned by lookups of ids that are not present
M.default_name = "{{.DefaultName}}"

-- ids to look up after loading
M.lookup = {
{{- range .Lookup}}
    "{{.}}",
{{- end}}
}

-- ids to remove after the lookups
M.remove = {
{{- range .Remove}}
    "{{.}}",
{{- end}}
}

M.check = {{.Check}}
M.print = {{.Print}}
M.draw = {{.Draw}}

-- reload and report again whenever the data file changes
M.watch = {{.Watch}}

M.logging = {
    size = {{.Logging.Size}},
    count = {{.Logging.Count}},
    console = false,

    levels = {
        DEFAULT = "info",
    },
}

return M
`
)
