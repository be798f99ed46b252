// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/filecache/internal/cacheutil"
)

// NewCacheFlags constructs the flags that make up a cache.Config. Each one
// resolves from the command line, then its FCACHE_* env var, then the config
// file at path.
func NewCacheFlags(path string) (flags []cli.Flag) {
	defaultDir, _ := cacheutil.Dir()

	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "dir",
			Aliases: []string{"d"},
			Usage:   "cache directory",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("FCACHE_DIR"),
				yaml.YAML("dir", altsrc.StringSourcer(path)),
			),
			Value: defaultDir,
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		&cli.BoolWithInverseFlag{
			Name:  "read",
			Usage: "serve values from the cache",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("FCACHE_READ"),
				yaml.YAML("read", altsrc.StringSourcer(path)),
			),
			Value: true,
		},
		&cli.BoolWithInverseFlag{
			Name:  "write",
			Usage: "store values and purge expired entries",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("FCACHE_WRITE"),
				yaml.YAML("write", altsrc.StringSourcer(path)),
			),
			Value: true,
		},
		&cli.BoolWithInverseFlag{
			Name:  "compress",
			Usage: "gzip values on write",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("FCACHE_COMPRESS"),
				yaml.YAML("compress", altsrc.StringSourcer(path)),
			),
			Value: false,
		},
		&cli.BoolWithInverseFlag{
			Name:  "convert",
			Usage: "rewrite uncompressed entries as gzip when read",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("FCACHE_CONVERT"),
				yaml.YAML("convert", altsrc.StringSourcer(path)),
			),
			Value: false,
		},
		&cli.IntFlag{
			Name:    "expiry",
			Aliases: []string{"e"},
			Usage:   "seconds after which purge removes an entry, 0 to never expire",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("FCACHE_EXPIRY"),
				yaml.YAML("expiry", altsrc.StringSourcer(path)),
			),
			Value: 0,
		},
	}

	return
}

// NewOutputFlags constructs the rendering flags used by ls.
func NewOutputFlags(path string) []cli.Flag {
	return []cli.Flag{
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("ls.color", altsrc.StringSourcer(path)),
				yaml.YAML("color", altsrc.StringSourcer(path)),
			),
			Value: false,
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "glob matched against entry names",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("ls.output", altsrc.StringSourcer(path)),
				yaml.YAML("output", altsrc.StringSourcer(path)),
			),
			Value: "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("ls.titles", altsrc.StringSourcer(path)),
				yaml.YAML("titles", altsrc.StringSourcer(path)),
			),
			Value: false,
		},
	}
}

// defaultFlag is shared by get and mget.
func defaultFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "default",
		Usage: "value to print on a cache miss",
	}
}
