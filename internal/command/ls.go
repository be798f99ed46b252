// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/staranto/filecache/internal/cache"
	"github.com/staranto/filecache/internal/cacheutil"
	"github.com/staranto/filecache/internal/meta"
	"github.com/staranto/filecache/internal/output"
)

// LsCommandAction lists the entries in the cache directory. It reads the
// directory directly and does not open the cache, so listing never purges.
func LsCommandAction(ctx context.Context, cmd *cli.Command) error {
	entries, err := cacheutil.List(cmd.String("dir"))
	if err != nil {
		return err
	}

	opts := output.Options{
		Format: cmd.String("output"),
		Filter: cmd.String("filter"),
		Titles: cmd.Bool("titles"),
		Color:  cmd.Bool("color"),
		Expiry: cache.ExpirySeconds(int(cmd.Int("expiry"))),
		Now:    time.Now(),
	}
	return output.Spit(entries, opts, stdout(cmd))
}

// LsCommandBuilder constructs the cli.Command for "ls".
func LsCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "ls",
		Usage:     "list cache entries",
		UsageText: `fcache ls [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  NewOutputFlags(meta.Config.Source),
		Action: validated(0, 0, LsCommandAction),
	}
}
