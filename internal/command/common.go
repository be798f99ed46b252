// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/staranto/filecache/internal/cache"
	"github.com/staranto/filecache/internal/cacheutil"
	"github.com/staranto/filecache/internal/meta"
)

// CacheConfig assembles a cache.Config from the resolved cache flags.
func CacheConfig(cmd *cli.Command) cache.Config {
	return cache.Config{
		Dir:           cmd.String("dir"),
		ReadEnabled:   cmd.Bool("read"),
		WriteEnabled:  cmd.Bool("write"),
		Compress:      cmd.Bool("compress"),
		ConvertOnRead: cmd.Bool("convert"),
		Expiry:        cache.ExpirySeconds(int(cmd.Int("expiry"))),
	}
}

// OpenCache builds the cache for a command. FCACHE_CACHE=0 swaps in a
// cache.Nop so every command behaves as if the cache were empty.
func OpenCache(cmd *cli.Command) (cache.Cache, error) {
	if !cacheutil.Enabled() {
		log.Debug("cache disabled by FCACHE_CACHE")
		return cache.Nop{}, nil
	}

	cfg := CacheConfig(cmd)
	log.Debugf("cache config: %+v", cfg)

	c, err := cache.New(cfg, cache.WithLogger(log.Log))
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// stdout and stdin resolve to the root command's streams so tests can swap
// them.
func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func stdin(cmd *cli.Command) io.Reader {
	if r := cmd.Root().Reader; r != nil {
		return r
	}
	return os.Stdin
}

// readValue returns the value argument at idx, or all of stdin when it is
// absent. An interactive terminal on stdin is refused rather than waited on.
func readValue(cmd *cli.Command, idx int) ([]byte, error) {
	if cmd.Args().Len() > idx {
		return []byte(cmd.Args().Get(idx)), nil
	}

	r := stdin(cmd)
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, errors.New("no value given and stdin is a terminal")
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read value from stdin: %w", err)
	}
	return b, nil
}

// failed is the error for a cache operation that reported false. The message
// goes to stderr and the process exits 1.
func failed(format string, args ...any) error {
	return cli.Exit(fmt.Sprintf(format, args...), 1)
}

// miss exits 1 without a message.
func miss() error {
	return cli.Exit("", 1)
}

// validated wraps an action with the shared validators.
func validated(atLeast, atMost int, action cli.ActionFunc) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		if err := GlobalFlagsValidator(ctx, cmd); err != nil {
			return err
		}
		if err := ArgsValidator(cmd, atLeast, atMost); err != nil {
			return err
		}
		log.Debugf("Executing action for %s %v", cmd.FullName(), cmd.Args().Slice())
		return action(ctx, cmd)
	}
}
