package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd(zap.NewNop())
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.Execute()
}

func TestConvertsDirectory(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "d0001.htm"), []byte("text\n"), 0o644))

	require.NoError(t, run(t, "--src", src, "--dest", dst, "--mask", "d0*.htm"))

	data, err := os.ReadFile(filepath.Join(dst, "d0001.htm"))
	require.NoError(t, err)
	assert.Equal(t, "text\n", string(data))
}

func TestMissingRequiredOptionsIsCleanNoOp(t *testing.T) {
	dst := t.TempDir()

	// No --src: usage is shown and nothing runs, but the command still
	// returns cleanly.
	require.NoError(t, run(t, "--dest", dst))

	entries, err := os.ReadDir(dst)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNonexistentDirectoryIsCleanNoOp(t *testing.T) {
	assert.NoError(t, run(t, "--src", filepath.Join(t.TempDir(), "gone"), "--dest", t.TempDir()))
}

func TestUnknownFlagIsCleanNoOp(t *testing.T) {
	assert.NoError(t, run(t, "--no-such-flag"))
}

func TestHelp(t *testing.T) {
	assert.NoError(t, run(t, "--help"))
}
