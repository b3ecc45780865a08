package log_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/mutecomm/numbase/log"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	defer log.Disable()
	assert.Error(t, log.Init("verbose", "test", "", false))
	assert.NoError(t, log.Init("info", "test", "", false))
	dir := t.TempDir()
	for _, level := range log.Levels {
		assert.NoError(t, log.Init(level, "test", dir, false), level)
	}
}

func TestInitLogDir(t *testing.T) {
	defer log.Disable()
	dir := t.TempDir()
	if assert.NoError(t, log.Init("info", "test", dir, false)) {
		log.Info("to file")
		log.Flush()
		entries, err := os.ReadDir(dir)
		if assert.NoError(t, err) {
			assert.Len(t, entries, 1)
		}
	}
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, "nb   ", log.Prefix("nb"))
	assert.Equal(t, "numba", log.Prefix("numbase"))
	assert.Equal(t, "     ", log.Prefix(""))
}

func TestError(t *testing.T) {
	defer log.Disable()
	var buf bytes.Buffer
	if err := log.SetLogWriter(&buf); err != nil {
		t.Fatal(err)
	}
	errFoo := errors.New("foo")
	assert.Equal(t, errFoo, log.Error(errFoo))
	err := log.Errorf("bar %d", 42)
	assert.EqualError(t, err, "bar 42")
	log.Flush()
	assert.Contains(t, buf.String(), "foo")
	assert.Contains(t, buf.String(), "bar 42")
	assert.Error(t, log.SetLogWriter(nil))
}

// This example shows when and how to use the error log level.
func Example_error() {
	if _, err := os.Open("does-not-exist"); err != nil {
		log.Error(err) // returns err unchanged
	}
}

// This example shows when and how to use the info log level.
func Example_info() {
	log.Info("numengine: command successful")
}
