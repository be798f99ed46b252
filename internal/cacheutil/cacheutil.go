// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cacheutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/apex/log"

	"github.com/staranto/filecache/internal/cache"
)

// Entry describes a cache file on disk.
type Entry struct {
	Name       string    `json:"name" yaml:"name"`
	Size       int64     `json:"size" yaml:"size"`
	ModTime    time.Time `json:"mtime" yaml:"mtime"`
	Compressed bool      `json:"compressed" yaml:"compressed"`
}

// Age returns how long ago the entry was last written, relative to now.
func (e Entry) Age(now time.Time) time.Duration {
	return now.Sub(e.ModTime)
}

// Expired reports whether a purge with the given expiry would remove e.
func (e Entry) Expired(now time.Time, expiry time.Duration) bool {
	return expiry > 0 && e.Age(now) > expiry
}

// Dir resolves the default cache directory.
// Precedence:
//  1. FCACHE_DIR, if set and non-empty
//  2. os.UserCacheDir()/fcache
//
// Returns ("", false) if a base cannot be resolved.
func Dir() (string, bool) {
	if c, ok := os.LookupEnv("FCACHE_DIR"); ok && c != "" {
		return c, true
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "fcache"), true
	}
	return "", false
}

// Enabled returns true unless FCACHE_CACHE explicitly disables it ("0"/"false").
func Enabled() bool {
	enabled, _ := os.LookupEnv("FCACHE_CACHE")
	return enabled == "" || (enabled != "0" && enabled != "false")
}

// List returns the cache files in dir sorted by name. Directories and the
// placeholder are skipped, as are files that vanish while listing.
func List(dir string) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache directory: %w", err)
	}

	entries := make([]Entry, 0, len(des))
	for _, de := range des {
		if !de.Type().IsRegular() || de.Name() == cache.Placeholder {
			continue
		}
		info, err := de.Info()
		if err != nil {
			log.WithError(err).Debugf("skipping %s", de.Name())
			continue
		}
		entries = append(entries, Entry{
			Name:       de.Name(),
			Size:       info.Size(),
			ModTime:    info.ModTime(),
			Compressed: sniff(filepath.Join(dir, de.Name())),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// sniff reads just enough of p to recognize a gzip header.
func sniff(p string) bool {
	f, err := os.Open(p)
	if err != nil {
		return false
	}
	defer f.Close()

	head := make([]byte, 2)
	if _, err := io.ReadFull(f, head); err != nil {
		return false
	}
	return cache.IsGzip(head)
}
