// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/filecache/internal/meta"
)

// MgetCommandAction prints KEY=VALUE for each key, in argument order. Misses
// print the --default value, which is empty unless set.
func MgetCommandAction(ctx context.Context, cmd *cli.Command) error {
	c, err := OpenCache(cmd)
	if err != nil {
		return err
	}

	keys := cmd.Args().Slice()
	values := c.GetMultiple(keys, []byte(cmd.String("default")))

	w := stdout(cmd)
	for _, k := range keys {
		fmt.Fprintf(w, "%s=%s\n", k, values[k])
	}
	return nil
}

func MgetCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "mget",
		Usage:     "print several cached values",
		UsageText: `fcache mget KEY... [--default VALUE]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			defaultFlag(),
		},
		Action: validated(1, -1, MgetCommandAction),
	}
}

// MsetCommandAction stores every KEY=VALUE argument. All arguments are
// validated before anything is written.
func MsetCommandAction(ctx context.Context, cmd *cli.Command) error {
	pairs := make(map[string][]byte, cmd.Args().Len())
	for _, arg := range cmd.Args().Slice() {
		if err := FlagValidators(arg, KeyValueValidator); err != nil {
			return err
		}
		k, v, _ := strings.Cut(arg, "=")
		pairs[k] = []byte(v)
	}

	c, err := OpenCache(cmd)
	if err != nil {
		return err
	}
	if !c.SetMultiple(pairs, 0) {
		return failed("failed to write one or more keys")
	}
	return nil
}

func MsetCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "mset",
		Usage:     "store several values",
		UsageText: `fcache mset KEY=VALUE...`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: validated(1, -1, MsetCommandAction),
	}
}
