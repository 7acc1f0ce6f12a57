package shell

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEnvironment(t *testing.T) {
	sys := []string{"PATH=/usr/bin", "HOME=/home/user", "MALFORMED"}
	got := resolveEnvironment(sys, map[string]string{"HOME": "/tmp", "BLASTDB": "/data"})

	assert.ElementsMatch(t, []string{"PATH=/usr/bin", "HOME=/tmp", "BLASTDB=/data"}, got)
}

func TestLookPath(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "blastp")
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "not-exec"), []byte(""), 0o600))

	got, err := lookPath("blastp", []string{"PATH=/nonexistent" + string(os.PathListSeparator) + dir})
	require.NoError(t, err)
	assert.Equal(t, exe, got)

	_, err = lookPath("not-exec", []string{"PATH=" + dir})
	assert.ErrorIs(t, err, exec.ErrNotFound)

	_, err = lookPath("blastp", nil)
	assert.ErrorIs(t, err, exec.ErrNotFound)
}

func TestStderrTail(t *testing.T) {
	assert.Equal(t, "short", stderrTail("  short\n"))

	long := make([]byte, stderrTailLimit+10)
	for i := range long {
		long[i] = 'x'
	}
	got := stderrTail(string(long))
	assert.Len(t, got, stderrTailLimit+3)
	assert.Equal(t, "...", got[:3])
}
