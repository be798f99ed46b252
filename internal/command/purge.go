// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/staranto/filecache/internal/cache"
	"github.com/staranto/filecache/internal/meta"
)

// PurgeCommandAction removes expired entries and prints how many went.
// Opening the cache already purges once, so that pass is counted too.
func PurgeCommandAction(ctx context.Context, cmd *cli.Command) error {
	c, err := OpenCache(cmd)
	if err != nil {
		return err
	}

	removed := c.Purge()
	if fc, ok := c.(*cache.FileCache); ok {
		removed += fc.InitialPurge()
	}

	if !cmd.Bool("quiet") {
		fmt.Fprintf(stdout(cmd), "%d\n", removed)
	}
	return nil
}

// PurgeCommandBuilder constructs the cli.Command for "purge".
func PurgeCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "purge",
		Usage:     "delete entries older than --expiry",
		UsageText: `fcache purge [--quiet]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "do not print the number of removed entries",
			},
		},
		Action: validated(0, 0, PurgeCommandAction),
	}
}
