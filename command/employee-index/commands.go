// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/templates"
	"github.com/bitmark-inc/avltree/util"
)

// sample ids used by a generated configuration
var (
	sampleLookup = []string{"4616748508", "0077389069"}
	sampleRemove = []string{"0077389069"}
)

// setup command handler
//
// commands that do not need the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "generate-config", "gen":
		if len(arguments) < 1 || "" == arguments[0] {
			exitwithstatus.Message("missing configuration file name argument")
		}
		fileName := arguments[0]
		if err := writeConfiguration(fileName); nil != err {
			if fault.IsErrExists(err) {
				exitwithstatus.Message("generate configuration: %q already exists, not overwritten", fileName)
			}
			exitwithstatus.Message("generate configuration: %q error: %s", fileName, err)
		}
		fmt.Printf("generated configuration: %q\n", fileName)

	case "lookup", "l", "remove", "r", "print", "p", "check", "c", "draw", "d":
		return false // defer processing until data is loaded

	case "config-test", "cfg":
		return false

	case "start", "run":
		return false // continue processing

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  generate-config FILE       (gen)    - create a sample configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - load, report and optionally watch, same as no arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  lookup ID...               (l)      - display the names for the ids\n")
		fmt.Printf("  remove ID...               (r)      - remove ids then display the remaining index\n")
		fmt.Printf("  print                      (p)      - display all employees in id order\n")
		fmt.Printf("  check                      (c)      - verify the index structure\n")
		fmt.Printf("  draw                       (d)      - display the index as a tree diagram\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// create a new sample configuration file, never overwrites
func writeConfiguration(fileName string) error {
	if util.EnsureFileExists(fileName) {
		return fmt.Errorf("%w: %q", fault.ErrFileExists, fileName)
	}
	fd, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if os.IsExist(err) {
		return fmt.Errorf("%w: %q", fault.ErrFileExists, fileName)
	} else if nil != err {
		return err
	}
	err = generateConfiguration(fd)
	if e := fd.Close(); nil == err {
		err = e
	}
	if nil != err {
		_ = os.Remove(fileName)
	}
	return err
}

// write a sample configuration
func generateConfiguration(w io.Writer) error {
	t, err := template.New("configuration").Parse(templates.ConfigurationTemplate)
	fault.PanicIfError("parse configuration template", err)

	sample := Configuration{
		DataDirectory: ".",
		DataFile:      defaultDataFile,
		DefaultName:   "",
		Lookup:        sampleLookup,
		Remove:        sampleRemove,
		Check:         true,
		Print:         true,
		Draw:          false,
		Watch:         false,
		Logging: logger.Configuration{
			Size:  defaultLogSize,
			Count: defaultLogCount,
		},
	}
	return t.Execute(w, sample)
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the index is loaded so these commands can query and change it
func processDataCommand(w io.Writer, log *logger.L, arguments []string, tree *index) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "lookup", "l":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing id argument")
		}
		for _, id := range arguments {
			fmt.Fprintf(w, "%s, %s\n", id, tree.Lookup(id))
		}

	case "remove", "r":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing id argument")
		}
		for _, id := range arguments {
			if name, ok := tree.Remove(id); ok {
				log.Infof("removed: %q  name: %q", id, name)
			} else {
				log.Warnf("remove: %q  not present", id)
			}
		}
		diagnostics := &bytes.Buffer{}
		if !tree.Check(diagnostics) {
			fault.Panicf("index inconsistent after remove:\n%s", diagnostics.String())
		}
		if err := tree.Print(w); nil != err {
			exitwithstatus.Message("print error: %s", err)
		}

	case "print", "p":
		if err := tree.Print(w); nil != err {
			exitwithstatus.Message("print error: %s", err)
		}

	case "check", "c":
		if !tree.Check(w) {
			log.Critical("index check failed")
			exitwithstatus.Exit(1)
		}
		fmt.Fprintf(w, "index: %d employees  height: %d  OK\n", tree.Count(), tree.Height())

	case "draw", "d":
		depth := tree.Draw(w, true)
		fmt.Fprintf(w, "depth: %d\n", depth)

	default:
		exitwithstatus.Message("error: no such command: %q", command)
	}

	// indicate processing complete and perform normal exit from main
	return true
}
