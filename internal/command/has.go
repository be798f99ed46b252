// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/filecache/internal/meta"
)

func HasCommandAction(ctx context.Context, cmd *cli.Command) error {
	c, err := OpenCache(cmd)
	if err != nil {
		return err
	}
	if !c.Has(cmd.Args().First()) {
		return miss()
	}
	return nil
}

// HasCommandBuilder constructs the cli.Command for "has". It prints nothing
// and exits 0 when KEY has an entry, 1 otherwise.
func HasCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "has",
		Usage:     "test whether a key has an entry",
		UsageText: `fcache has KEY`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: validated(1, 1, HasCommandAction),
	}
}
