// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/filecache/internal/meta"
)

func RmCommandAction(ctx context.Context, cmd *cli.Command) error {
	c, err := OpenCache(cmd)
	if err != nil {
		return err
	}
	if !c.DeleteMultiple(cmd.Args().Slice()) {
		return failed("failed to delete one or more keys")
	}
	return nil
}

// RmCommandBuilder constructs the cli.Command for "rm". Removing a key that
// has no entry is not an error.
func RmCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Aliases:   []string{"delete"},
		Usage:     "delete entries",
		UsageText: `fcache rm KEY...`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: validated(1, -1, RmCommandAction),
	}
}
