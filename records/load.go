// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package records

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

// longest record accepted
const maximumLineLength = 1024 * 1024

// Store - destination for records, keyed by id
//
// Insert returns true if the key was not already present
type Store interface {
	Insert(key string, value string) bool
}

// Stats - counts from a single load
type Stats struct {
	Lines       int // total lines read
	Added       int // new ids
	Overwritten int // ids already present, name replaced
	Degenerate  int // lines without a separator
	Empty       int // blank lines, not inserted
}

// LoadFile - open a file and load all of its records
func LoadFile(fileName string, store Store, log *logger.L) (Stats, error) {
	f, err := os.Open(fileName)
	if nil != err {
		if errors.Is(err, os.ErrNotExist) {
			return Stats{}, fault.ErrMissingDataFile
		}
		return Stats{}, err
	}
	defer f.Close()

	log.Infof("load records from: %q", fileName)
	return Load(f, store, log)
}

// Load - read records line by line and insert each into the store
func Load(r io.Reader, store Store, log *logger.L) (Stats, error) {
	stats := Stats{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maximumLineLength)

	for scanner.Scan() {
		stats.Lines += 1
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if "" == line {
			log.Debugf("line: %d  empty", stats.Lines)
			stats.Empty += 1
			continue
		}

		id, name, ok := ParseLine(line)
		if !ok {
			log.Warnf("line: %d  no separator in: %q", stats.Lines, line)
			stats.Degenerate += 1
		}

		if store.Insert(id, name) {
			stats.Added += 1
		} else {
			log.Debugf("line: %d  id: %q  replaced with name: %q", stats.Lines, id, name)
			stats.Overwritten += 1
		}
	}

	if err := scanner.Err(); nil != err {
		if errors.Is(err, bufio.ErrTooLong) {
			log.Errorf("line: %d  exceeds: %d bytes", stats.Lines+1, maximumLineLength)
			return stats, fault.ErrRecordTooLong
		}
		log.Errorf("read error: %s", err)
		return stats, err
	}

	log.Infof("records: %d  added: %d  overwritten: %d  degenerate: %d", stats.Lines-stats.Empty, stats.Added, stats.Overwritten, stats.Degenerate)
	return stats, nil
}
