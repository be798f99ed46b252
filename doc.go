// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// fcache is the command line front end for the file cache. It wires the CLI,
// delegates to internal packages, and serves as the entry point.
//
//go:generate go run ./tools/docgen -root .
package main
