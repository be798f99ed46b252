// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/staranto/filecache/internal/config"
	"github.com/staranto/filecache/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	// A missing config file is fine; flags then fall back to env and defaults.
	cfg, _ := config.Load()
	meta := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
	}

	app := &cli.Command{
		Name:  "fcache",
		Usage: "File Cache",
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "fcache version info",
				HideDefault: true,
			},
		}, NewCacheFlags(cfg.Source)...),
		Metadata: map[string]any{
			"meta": meta,
		},
		// Exit codes are mapped in main, never by os.Exit inside the app.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}

	app.Commands = append(app.Commands,
		ClearCommandBuilder(app, meta),
		CompletionCommandBuilder(app, meta),
		GetCommandBuilder(app, meta),
		HasCommandBuilder(app, meta),
		LsCommandBuilder(app, meta),
		MgetCommandBuilder(app, meta),
		MsetCommandBuilder(app, meta),
		PurgeCommandBuilder(app, meta),
		RmCommandBuilder(app, meta),
		SetCommandBuilder(app, meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range append([]*cli.Command{app}, app.Commands...) {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
