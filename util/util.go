// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package util contains utility functions for numbase.
package util

import (
	"fmt"
	"io"
	"os"

	"github.com/mutecomm/numbase/log"
	"golang.org/x/term"
)

// Fatal prints err to stderr and exits the process with exit code 1.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s: error: %s\n", os.Args[0], err)
	os.Exit(1)
}

// CreateDirs creates all given directories. Empty names are skipped.
func CreateDirs(dirs ...string) error {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0700); err != nil {
			return log.Error(err)
		}
	}
	return nil
}

// IsTerminal returns true, if r is a file connected to a terminal.
func IsTerminal(r io.Reader) bool {
	fp, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(fp.Fd()))
}

// ContainsString returns true, if the the string array sa contains the string s.
// Otherwise, it returns false.
func ContainsString(sa []string, s string) bool {
	for _, v := range sa {
		if v == s {
			return true
		}
	}
	return false
}
