// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/filecache/internal/meta"
)

func ClearCommandAction(ctx context.Context, cmd *cli.Command) error {
	c, err := OpenCache(cmd)
	if err != nil {
		return err
	}
	if !c.Clear() {
		return failed("failed to clear %s", cmd.String("dir"))
	}
	return nil
}

// ClearCommandBuilder constructs the cli.Command for "clear".
func ClearCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "clear",
		Usage:     "delete every entry",
		UsageText: `fcache clear`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: validated(0, 0, ClearCommandAction),
	}
}
