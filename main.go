// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/filecache/internal/command"
	mylog "github.com/staranto/filecache/internal/log"
	"github.com/staranto/filecache/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain(os.Args, os.Stderr))
}

func realMain(args []string, stderr io.Writer) int {
	mylog.InitLogger()

	if len(args) < 2 {
		fmt.Fprintln(stderr, "No command specified.")
		args = append(args, "--help")
	}

	// Short-circuit --version/-v.
	for _, a := range args[1:] {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return 0
		}
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		return exitCode(err, stderr)
	}

	return 0
}

// exitCode maps a command error onto the process exit status. Commands signal
// a miss or a false result with a cli.ExitCoder; anything else is a usage or
// configuration problem.
func exitCode(err error, stderr io.Writer) int {
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		if msg := ec.Error(); msg != "" {
			fmt.Fprintln(stderr, msg)
		}
		return ec.ExitCode()
	}

	log.WithError(err).Debug("command failed")
	fmt.Fprintln(stderr, err)
	return 2
}
