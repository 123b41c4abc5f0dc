//go:build integration && !windows

package rod_test

import (
	"syscall"
	"testing"
	"time"

	"github.com/fwojciec/reservo/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// processAlive uses signal 0, which only checks that pid exists.
func processAlive(pid int) bool {
	return syscall.Kill(pid, syscall.Signal(0)) == nil
}

func TestFetcher_Close_StopsBrowserProcess(t *testing.T) {
	t.Parallel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)

	pid := fetcher.LauncherPID()
	require.NotZero(t, pid)
	require.True(t, processAlive(pid), "browser should run while the fetcher is open")

	require.NoError(t, fetcher.Close())

	assert.Eventually(t, func() bool { return !processAlive(pid) },
		2*time.Second, 50*time.Millisecond, "browser should exit after Close")
}
