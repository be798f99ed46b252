// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/filecache/internal/meta"
)

// SetCommandAction stores VALUE, or stdin when VALUE is omitted, under KEY.
func SetCommandAction(ctx context.Context, cmd *cli.Command) error {
	value, err := readValue(cmd, 1)
	if err != nil {
		return err
	}

	c, err := OpenCache(cmd)
	if err != nil {
		return err
	}

	key := cmd.Args().First()
	if !c.Set(key, value, 0) {
		return failed("failed to write %s", key)
	}
	return nil
}

// SetCommandBuilder constructs the cli.Command for "set".
func SetCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "store a value",
		UsageText: `fcache set KEY [VALUE]`,
		Description: "Stores VALUE under KEY. Without VALUE the value is read from stdin.\n" +
			"Entries expire by age under the global --expiry; there is no per-key TTL.",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: validated(1, 2, SetCommandAction),
	}
}
