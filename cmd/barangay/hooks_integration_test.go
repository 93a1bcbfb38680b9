//go:build integration
// +build integration

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cristianoliveira/barangay-directory/internal/config"
	"github.com/cristianoliveira/barangay-directory/internal/hooks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func installHook(t *testing.T, dir, point, name, body string) {
	t.Helper()
	hookDir := filepath.Join(dir, point)
	require.NoError(t, os.MkdirAll(hookDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(hookDir, name), []byte("#!/bin/sh\n"+body+"\n"), 0o755))
}

func useHooks(t *testing.T, mode string) string {
	t.Helper()
	dir := t.TempDir()
	config.Set("hooks_dir", dir)
	config.Set("hooks_failure_mode", mode)
	config.Set("hooks_timeout", "5")
	t.Cleanup(func() { config.Set("hooks_dir", "") })
	return dir
}

func TestAddRunsPostCreateHook(t *testing.T) {
	c := newTestClient(t)
	dir := useHooks(t, hooks.FailureAbort)
	log := filepath.Join(t.TempDir(), "created.log")
	installHook(t, dir, hooks.PostCreate, "log", `echo "$BARANGAY_RESIDENT_NAME" >> `+log)

	_, err := run(t, NewAddCmd(c), "--first", "Maria", "--last", "Reyes", "--birth", "1988-06-12", "--address1", "12 Mabini St.")
	require.NoError(t, err)

	data, err := os.ReadFile(log)
	require.NoError(t, err)
	assert.Equal(t, "Reyes, Maria", strings.TrimSpace(string(data)))
}

func TestPreArchiveHookCanVeto(t *testing.T) {
	c := newTestClient(t)
	ids := seedNumbered(t, c, 3)
	dir := useHooks(t, hooks.FailureAbort)
	installHook(t, dir, hooks.PreArchive, "deny", "exit 1")

	_, err := run(t, NewArchiveCmd(c), ids[1])
	require.ErrorIs(t, err, hooks.ErrHookFailed)

	n, err := c.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n, "a vetoed archive keeps the resident")
}

func TestPreArchiveHookWarnsAndContinues(t *testing.T) {
	c := newTestClient(t)
	ids := seedNumbered(t, c, 3)
	dir := useHooks(t, hooks.FailureWarn)
	installHook(t, dir, hooks.PreArchive, "deny", "exit 1")

	_, err := run(t, NewArchiveCmd(c), ids[1])
	require.NoError(t, err)

	n, err := c.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
