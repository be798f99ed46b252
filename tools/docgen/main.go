// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	md2man "github.com/cpuguy83/go-md2man/v2/md2man"
)

// Minimal doc generator:
// - Reads docs/commands/*.md as canonical command docs
// - Generates docs/man/man1/fcache-<cmd>.1 via md2man

func main() {
	var (
		repoRoot           string
		writeOnlyIfChanged bool
	)

	flag.StringVar(&repoRoot, "root", ".", "repo root (default current dir)")
	flag.BoolVar(&writeOnlyIfChanged, "only-if-changed", true, "only write files if content changed")
	flag.Parse()

	commandsDir := filepath.Join(repoRoot, "docs", "commands")
	manOutDir := filepath.Join(repoRoot, "docs", "man", "man1")

	n, err := generate(commandsDir, manOutDir, writeOnlyIfChanged)
	if err != nil {
		fatalf("%v", err)
	}
	if n == 0 {
		fatalf("no command markdown found under %s", commandsDir)
	}
}

// generate renders every markdown file in commandsDir to a man page in
// manOutDir and returns how many were processed.
func generate(commandsDir, manOutDir string, onlyIfChanged bool) (int, error) {
	if err := os.MkdirAll(manOutDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating man output dir: %w", err)
	}

	entries, err := os.ReadDir(commandsDir)
	if err != nil {
		return 0, fmt.Errorf("reading commands dir %s: %w", commandsDir, err)
	}

	var processed int
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		cmd := strings.TrimSuffix(e.Name(), ".md")
		inPath := filepath.Join(commandsDir, e.Name())
		raw, err := os.ReadFile(inPath)
		if err != nil {
			return processed, fmt.Errorf("reading %s: %w", inPath, err)
		}

		manPath := filepath.Join(manOutDir, manName(cmd))
		if err := writeFileIfChanged(manPath, md2man.Render(withTitle(cmd, raw)), onlyIfChanged); err != nil {
			return processed, fmt.Errorf("writing man page for %s: %w", cmd, err)
		}
		processed++
	}
	return processed, nil
}

func manName(cmd string) string {
	if cmd == "fcache" {
		return "fcache.1"
	}
	return fmt.Sprintf("fcache-%s.1", cmd)
}

var titleRe = regexp.MustCompile(`(?m)\A%\s`)

// withTitle prepends the md2man title block when the markdown lacks one.
func withTitle(cmd string, md []byte) []byte {
	if titleRe.Match(md) {
		return md
	}
	name := strings.TrimSuffix(manName(cmd), ".1")
	title := fmt.Sprintf("%% %s(1)\n\n", strings.ToUpper(name))
	return append([]byte(title), md...)
}

func fatalf(f string, a ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", a...)
	os.Exit(1)
}

func writeFileIfChanged(path string, new []byte, onlyIfChanged bool) error {
	if !onlyIfChanged {
		return os.WriteFile(path, new, 0o644)
	}
	old, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return os.WriteFile(path, new, 0o644)
		}
		return err
	}
	if bytes.Equal(bytes.TrimSpace(old), bytes.TrimSpace(new)) {
		return nil
	}
	return os.WriteFile(path, new, 0o644)
}
