// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/records"
)

// employee names indexed by id
type index = avl.Tree[string, string]

// build a new index from the data file
//
// on error the partly filled index is discarded and nil is returned
func load(options *Configuration, log *logger.L) (*index, records.Stats, error) {
	tree := avl.NewWithDefault[string, string](options.DefaultName)
	stats, err := records.LoadFile(options.DataFile, tree, log)
	if nil != err {
		return nil, stats, err
	}
	log.Infof("index: %d employees  height: %d", tree.Count(), tree.Height())
	return tree, stats, nil
}

// load the data file again, the current index is kept unless the
// whole file loads
func reload(tree *index, options *Configuration, log *logger.L) (*index, error) {
	fresh, _, err := load(options, log)
	if nil != err {
		log.Errorf("reload: %q  %s, keeping %d employees", options.DataFile, loadFailure(err), tree.Count())
		return tree, err
	}
	return fresh, nil
}

// describe why a data file could not be loaded
func loadFailure(err error) string {
	switch {
	case fault.IsErrNotFound(err):
		return "data file is missing"
	case fault.IsErrRecord(err):
		return fmt.Sprintf("data file has an unreadable record: %s", err)
	default:
		return fmt.Sprintf("error: %s", err)
	}
}

// check, print, sample lookups then sample removals
func report(w io.Writer, tree *index, options *Configuration, log *logger.L) error {

	if options.Check {
		diagnostics := &bytes.Buffer{}
		if !tree.Check(diagnostics) {
			fault.Criticalf("index check failed:\n%s", diagnostics.String())
		} else {
			log.Info("index check passed")
		}
		if _, err := diagnostics.WriteTo(w); nil != err {
			return err
		}
	}

	if options.Print {
		if err := tree.Print(w); nil != err {
			return err
		}
	}

	if options.Draw {
		depth := tree.Draw(w, true)
		log.Debugf("drawn depth: %d", depth)
	}

	for _, id := range options.Lookup {
		name := tree.Get(id)
		log.Debugf("lookup: %q → %q", id, name)
		_, err := fmt.Fprintf(w, "\nLooking up employee with id: %s\n  index:  %s\n  lookup: %s\n", id, name, tree.Lookup(id))
		if nil != err {
			return err
		}
	}

	for _, id := range options.Remove {
		var err error
		name, removed := tree.Remove(id)
		if removed {
			log.Infof("removed: %q  name: %q", id, name)
			_, err = fmt.Fprintf(w, "\nRemoved employee with id: %s  name: %s\n", id, name)
		} else {
			log.Warnf("remove: %q  not present", id)
			_, err = fmt.Fprintf(w, "\nNo employee with id: %s\n", id)
		}
		if nil != err {
			return err
		}
		if _, err := fmt.Fprintf(w, "  lookup after remove: %q\n", tree.Get(id)); nil != err {
			return err
		}
	}
	return nil
}
