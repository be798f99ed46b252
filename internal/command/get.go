// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/filecache/internal/meta"
)

// GetCommandAction writes the value for KEY to stdout. A miss exits 1 unless
// --default is given, in which case the default is written instead.
func GetCommandAction(ctx context.Context, cmd *cli.Command) error {
	c, err := OpenCache(cmd)
	if err != nil {
		return err
	}

	var def []byte
	if cmd.IsSet("default") {
		def = []byte(cmd.String("default"))
	}

	value := c.Get(cmd.Args().First(), def)
	if value == nil {
		return miss()
	}

	_, err = stdout(cmd).Write(value)
	return err
}

// GetCommandBuilder constructs the cli.Command for "get".
func GetCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "print a cached value",
		UsageText: `fcache get KEY [--default VALUE]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			defaultFlag(),
		},
		Action: validated(1, 1, GetCommandAction),
	}
}
