// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateDirs(t *testing.T) {
	tmp := t.TempDir()
	a := filepath.Join(tmp, "a")
	b := filepath.Join(tmp, "b", "c")
	if assert.NoError(t, CreateDirs(a, "", b)) {
		for _, dir := range []string{a, b} {
			fi, err := os.Stat(dir)
			if assert.NoError(t, err) {
				assert.True(t, fi.IsDir())
			}
		}
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(strings.NewReader("")))
	fp, err := os.Open(os.DevNull)
	if assert.NoError(t, err) {
		defer fp.Close()
		assert.False(t, IsTerminal(fp))
	}
}

func TestContainsString(t *testing.T) {
	sa := []string{"exit", "quit"}
	assert.True(t, ContainsString(sa, "quit"))
	assert.False(t, ContainsString(sa, "help"))
	assert.False(t, ContainsString(nil, "exit"))
}
