// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/staranto/filecache/internal/cache"
)

// run executes fcache with args against dir and returns stdout.
func run(t *testing.T, dir string, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("FCACHE_CFG", filepath.Join(t.TempDir(), "none.yaml"))

	argv := append([]string{"fcache", "--dir", dir}, args...)
	app, err := InitApp(context.Background(), argv)
	require.NoError(t, err)

	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &bytes.Buffer{}
	app.Reader = strings.NewReader(stdin)

	err = app.Run(context.Background(), argv)
	return out.String(), err
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return -1
}

func TestSetGet(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "", "set", "greeting", "hello")
	require.NoError(t, err)

	out, err := run(t, dir, "", "get", "greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestSet_Stdin(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "from\nstdin\n", "set", "k")
	require.NoError(t, err)

	out, err := run(t, dir, "", "get", "k")
	require.NoError(t, err)
	assert.Equal(t, "from\nstdin\n", out)
}

func TestSetGet_Compressed(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "", "--compress", "set", "k", "packed")
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, "k"))
	require.NoError(t, err)
	assert.True(t, cache.IsGzip(raw))

	out, err := run(t, dir, "", "--compress", "get", "k")
	require.NoError(t, err)
	assert.Equal(t, "packed", out)
}

func TestGet_Miss(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "", "get", "absent")
	assert.Equal(t, 1, exitCode(err))
	assert.Empty(t, out)

	out, err = run(t, dir, "", "get", "absent", "--default", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", out)
}

func TestGet_ReadDisabled(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "", "set", "k", "v")
	require.NoError(t, err)

	_, err = run(t, dir, "", "--no-read", "get", "k")
	assert.Equal(t, 1, exitCode(err))
}

func TestSet_WriteDisabled(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "", "--no-write", "set", "k", "v")
	assert.Equal(t, 1, exitCode(err))
	assert.NoFileExists(t, filepath.Join(dir, "k"))
}

func TestHasRm(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "", "has", "k")
	assert.Equal(t, 1, exitCode(err))

	_, err = run(t, dir, "", "set", "k", "v")
	require.NoError(t, err)

	_, err = run(t, dir, "", "has", "k")
	assert.NoError(t, err)

	_, err = run(t, dir, "", "rm", "k", "never-set")
	assert.NoError(t, err)

	_, err = run(t, dir, "", "has", "k")
	assert.Equal(t, 1, exitCode(err))
}

func TestMsetMget(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "", "mset", "a=1", "b=2")
	require.NoError(t, err)

	out, err := run(t, dir, "", "mget", "a", "b", "c", "--default", "none")
	require.NoError(t, err)
	assert.Equal(t, "a=1\nb=2\nc=none\n", out)
}

func TestMset_Invalid(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "", "mset", "a=1", "novalue")
	assert.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "a"))
}

func TestClear(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, cache.Placeholder), nil, 0o600))

	_, err := run(t, dir, "", "mset", "a=1", "b=2")
	require.NoError(t, err)

	_, err = run(t, dir, "", "clear")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, cache.Placeholder, entries[0].Name())
}

func TestPurge(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "", "mset", "old=1", "new=2")
	require.NoError(t, err)
	stale := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "old"), stale, stale))

	out, err := run(t, dir, "", "--expiry", "3600", "purge")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	assert.NoFileExists(t, filepath.Join(dir, "old"))
	assert.FileExists(t, filepath.Join(dir, "new"))

	out, err = run(t, dir, "", "--expiry", "3600", "purge", "--quiet")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestPurge_HugeExpiry(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "", "set", "k", "v")
	require.NoError(t, err)
	stale := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "k"), stale, stale))

	out, err := run(t, dir, "", "--expiry", "18446744074", "purge")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
	assert.FileExists(t, filepath.Join(dir, "k"))
}

func TestLs(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "", "mset", "a=1", "b=22")
	require.NoError(t, err)

	out, err := run(t, dir, "", "ls", "--output", "json")
	require.NoError(t, err)

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0]["name"])
	assert.Equal(t, 2.0, got[1]["size"])

	out, err = run(t, dir, "", "ls", "--filter", "b*")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[0]), "b"))
}

func TestLs_InvalidOutput(t *testing.T) {
	_, err := run(t, t.TempDir(), "", "ls", "--output", "xml")
	assert.Error(t, err)
}

func TestValidators(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "", "get")
	assert.Error(t, err)

	_, err = run(t, dir, "", "has", "a", "b")
	assert.Error(t, err)

	_, err = run(t, dir, "", "--expiry=-1", "purge")
	assert.Error(t, err)
}

func TestConfigurationError(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	_, err := run(t, file, "", "get", "k")

	var cerr *cache.ConfigurationError
	assert.True(t, errors.As(err, &cerr))
}

func TestCacheDisabledByEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FCACHE_CACHE", "0")

	_, err := run(t, dir, "", "set", "k", "v")
	assert.Equal(t, 1, exitCode(err))
	assert.NoFileExists(t, filepath.Join(dir, "k"))
}

func TestCompletion(t *testing.T) {
	out, err := run(t, t.TempDir(), "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "complete -F _fcache fcache")

	out, err = run(t, t.TempDir(), "", "completion", "zsh")
	require.NoError(t, err)
	assert.Contains(t, out, "#compdef fcache")

	t.Setenv("SHELL", "/bin/fish")
	_, err = run(t, t.TempDir(), "", "completion")
	assert.Error(t, err)
}

func TestKeyValueValidator(t *testing.T) {
	assert.NoError(t, KeyValueValidator("a=1"))
	assert.NoError(t, KeyValueValidator("a="))
	assert.NoError(t, KeyValueValidator("a=b=c"))
	assert.Error(t, KeyValueValidator("=1"))
	assert.Error(t, KeyValueValidator("a"))
}

func TestOutputValidator(t *testing.T) {
	for _, f := range []string{"text", "json", "yaml"} {
		assert.NoError(t, OutputValidator(f))
	}
	assert.Error(t, OutputValidator("raw"))
}
