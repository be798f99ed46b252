// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    int
		wantErr string
	}{
		{name: "silent miss", err: cli.Exit("", 1), want: 1},
		{name: "failure with message", err: cli.Exit("failed to write k", 1), want: 1, wantErr: "failed to write k\n"},
		{name: "plain error", err: errors.New("bad flag"), want: 2, wantErr: "bad flag\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			assert.Equal(t, tt.want, exitCode(tt.err, &stderr))
			assert.Equal(t, tt.wantErr, stderr.String())
		})
	}
}

func TestRealMain(t *testing.T) {
	t.Setenv("FCACHE_CFG", "/nonexistent/fcache.yaml")
	dir := t.TempDir()

	var stderr bytes.Buffer
	assert.Equal(t, 0, realMain([]string{"fcache", "--dir", dir, "set", "k", "v"}, &stderr))
	assert.Equal(t, 0, realMain([]string{"fcache", "--dir", dir, "has", "k"}, &stderr))
	assert.Equal(t, 1, realMain([]string{"fcache", "--dir", dir, "has", "missing"}, &stderr))
	assert.Equal(t, 0, realMain([]string{"fcache", "--version"}, &stderr))
	assert.Empty(t, stderr.String())
}
