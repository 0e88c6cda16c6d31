// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		if fault.IsErrInvalid(err) {
			exitwithstatus.Message("%s: invalid configuration in: %q  %s", program, configurationFile, err)
		}
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	recordsLog := logger.New("records")

	tree, stats, err := load(theConfiguration, recordsLog)
	if nil != err {
		reason := loadFailure(err)
		log.Criticalf("load: %q  %s", theConfiguration.DataFile, reason)
		exitwithstatus.Message("%s: load: %q  %s", program, theConfiguration.DataFile, reason)
	}
	if verbose {
		fmt.Printf("loaded: %d lines  added: %d  overwritten: %d  without separator: %d\n", stats.Lines, stats.Added, stats.Overwritten, stats.Degenerate)
	}

	// these commands query or change the loaded index
	if len(arguments) > 0 && processDataCommand(os.Stdout, log, arguments, tree) {
		return
	}

	if err = report(os.Stdout, tree, theConfiguration, log); nil != err {
		log.Errorf("report error: %s", err)
		exitwithstatus.Message("%s: report error: %s", program, err)
	}

	if !theConfiguration.Watch {
		return
	}

	w, err := newDataWatcher(theConfiguration.DataFile, logger.New("watcher"))
	if nil != err {
		log.Criticalf("watcher error: %s", err)
		exitwithstatus.Message("%s: watcher error: %s", program, err)
	}
	if err = w.Start(); nil != err {
		exitwithstatus.Message("%s: watcher start error: %s", program, err)
	}
	defer w.Stop()

	if !quiet {
		fmt.Printf("\n\nWatching: %q  waiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…\n", theConfiguration.DataFile)
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-w.change:
			if tree, err = reload(tree, theConfiguration, recordsLog); nil != err {
				continue
			}
			if err := report(os.Stdout, tree, theConfiguration, log); nil != err {
				log.Errorf("report error: %s", err)
			}

		case <-w.remove:
			log.Warnf("%s: %q", fault.ErrWatcherStopped, theConfiguration.DataFile)
			if !quiet {
				fmt.Printf("\ndata file removed, shutting down…\n")
			}
			return

		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			if !quiet {
				fmt.Printf("\nreceived signal: %v\n", sig)
				fmt.Printf("\nshutting down…\n")
			}
			return
		}
	}
}
