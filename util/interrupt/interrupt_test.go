//go:build !windows

package interrupt

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddInterruptHandler(t *testing.T) {
	var called bool
	AddInterruptHandler(func() { called = true })
	p, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, p.Signal(os.Interrupt))
	select {
	case err := <-ShutdownChannel:
		assert.NoError(t, err)
		assert.True(t, called)
	case <-time.After(5 * time.Second):
		t.Fatal("no shutdown after SIGINT")
	}
}
