package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(strings.NewReader(stdin), &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRun_Stdin(t *testing.T) {
	out, _, err := execute(t, "insert 1 42\ninsert 2 13\nmin-key\n", "run")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestRun_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.pq")
	require.NoError(t, os.WriteFile(path, []byte("insert 1 1\ninsert 2 4\nmax-value\n"), 0o600))

	out, _, err := execute(t, "", "run", path)
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)
}

func TestRun_MissingFile(t *testing.T) {
	_, _, err := execute(t, "", "run", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pqctl: open script")
}

func TestRun_Strict(t *testing.T) {
	out, stderr, err := execute(t, "min-value\nsize\n", "run", "--strict", "-")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "script failed")

	out, _, err = execute(t, "min-value\nsize\n", "run")
	require.NoError(t, err)
	assert.Equal(t, "error: priority: queue is empty\n0\n", out)
}

func TestRun_Stats(t *testing.T) {
	_, stderr, err := execute(t, "insert 1 1\nsize\n", "run", "--stats", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, stderr, "commands_total 2\n")
	assert.Contains(t, stderr, "queue_len 1\n")
}

func TestRun_BadLogLevel(t *testing.T) {
	_, _, err := execute(t, "", "run", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
