// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/apex/log"
)

const (
	dirMode  = os.FileMode(0o700)
	fileMode = os.FileMode(0o600)
)

// FileCache stores each entry as a file in a single flat directory.
type FileCache struct {
	cfg    Config
	log    log.Interface
	now    func() time.Time
	purged int
}

// Option customizes a FileCache at construction.
type Option func(*FileCache)

// WithLogger sets the logger. Defaults to the apex/log package logger.
func WithLogger(l log.Interface) Option {
	return func(c *FileCache) { c.log = l }
}

// WithNow sets the clock Purge measures entry age against. Defaults to
// time.Now.
func WithNow(now func() time.Time) Option {
	return func(c *FileCache) { c.now = now }
}

// New validates the cache directory and runs an initial purge. When reads or
// writes are enabled the directory is created (0700) if missing; when writes
// are enabled it must also be writable. Any of those failing is a
// *ConfigurationError.
func New(cfg Config, opts ...Option) (*FileCache, error) {
	c := &FileCache{
		cfg: cfg,
		log: log.Log,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	if cfg.enabled() {
		if err := c.prepareDir(); err != nil {
			c.log.WithError(err).Error("cache directory is unusable")
			return nil, err
		}
	}

	c.purged = c.Purge()

	return c, nil
}

// Dir returns the cache directory.
func (c *FileCache) Dir() string {
	return c.cfg.Dir
}

// InitialPurge returns how many entries the purge run by New removed.
func (c *FileCache) InitialPurge() int {
	return c.purged
}

func (c *FileCache) prepareDir() error {
	dir := c.cfg.Dir
	if dir == "" {
		return &ConfigurationError{Op: "init", Err: ErrNoDir}
	}

	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return &ConfigurationError{Op: "mkdir", Path: dir, Err: err}
		}
		c.log.Debugf("created cache directory %s", dir)
	case err != nil:
		return &ConfigurationError{Op: "stat", Path: dir, Err: err}
	case !info.IsDir():
		return &ConfigurationError{Op: "stat", Path: dir, Err: ErrNotDir}
	}

	if c.cfg.WriteEnabled {
		probe, err := os.CreateTemp(dir, ".probe-*")
		if err != nil {
			return &ConfigurationError{Op: "write", Path: dir, Err: errors.Join(ErrNotWritable, err)}
		}
		_ = probe.Close()
		_ = os.Remove(probe.Name())
	}

	return nil
}

// path returns the file for key and whether the key can address one at all.
func (c *FileCache) path(key string) (string, bool) {
	name := SanitizeKey(key)
	if !usable(name) {
		return "", false
	}
	return filepath.Join(c.cfg.Dir, name), true
}

// Get returns the value stored for key, or def on a miss. Disabled reads,
// absent files, unreadable files and corrupt gzip payloads are all misses.
//
// With Compress on, plain (legacy) entries are returned as is and, when
// ConvertOnRead is also on, rewritten gzip encoded as a side effect. A failed
// rewrite does not affect the result.
func (c *FileCache) Get(key string, def []byte) []byte {
	if !c.cfg.ReadEnabled {
		return def
	}

	p, ok := c.path(key)
	if !ok {
		c.log.Debugf("cache miss for unusable key %q", key)
		return def
	}

	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.log.Debugf("cache miss %s", key)
		} else {
			c.log.WithError(err).Debugf("cache read failed %s", key)
		}
		return def
	}

	if !c.cfg.Compress {
		c.log.Debugf("cache hit %s", key)
		return data
	}

	if !IsGzip(data) {
		c.log.Debugf("cache hit %s (uncompressed)", key)
		if c.cfg.ConvertOnRead {
			c.convert(key, p, data)
		}
		return data
	}

	plain, err := decompress(data)
	if err != nil {
		c.log.WithError(err).Debugf("cache read failed %s", key)
		return def
	}
	c.log.Debugf("cache hit %s", key)
	return plain
}

// convert rewrites a plain entry gzip encoded.
// THINK This mutates the store from a read path and hides its own failures.
func (c *FileCache) convert(key, p string, plain []byte) {
	packed, err := compress(plain)
	if err == nil {
		err = writeFile(p, packed)
	}
	if err != nil {
		c.log.WithError(err).Debugf("failed to convert cache entry %s", key)
		return
	}
	c.log.Debugf("converted cache entry %s to gzip", key)
}

// Set stores value under key and reports whether the write fully succeeded.
// ttl is accepted for interface compatibility and ignored: expiry is global
// (Config.Expiry) and measured from the file modification time.
func (c *FileCache) Set(key string, value []byte, _ time.Duration) bool {
	if !c.cfg.WriteEnabled {
		return false
	}

	p, ok := c.path(key)
	if !ok {
		c.log.Debugf("refusing to write unusable key %q", key)
		return false
	}

	data := value
	if c.cfg.Compress {
		packed, err := compress(value)
		if err != nil {
			c.log.WithError(err).Debugf("cache write failed %s", key)
			return false
		}
		data = packed
	}

	if err := writeFile(p, data); err != nil {
		c.log.WithError(err).Debugf("cache write failed %s", key)
		return false
	}
	c.log.Debugf("cache write %s (%d bytes)", key, len(data))
	return true
}

// writeFile replaces p with data through a temp file in the same directory so
// readers never observe a partial value.
func writeFile(p string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(p), ".tmp-*")
	if err != nil {
		return err
	}
	name := tmp.Name()

	_, err = tmp.Write(data)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(name, fileMode)
	}
	if err == nil {
		err = os.Rename(name, p)
	}
	if err != nil {
		_ = os.Remove(name)
		return err
	}
	return nil
}

// Has reports whether an entry file exists for key. Expiry is not considered.
func (c *FileCache) Has(key string) bool {
	p, ok := c.path(key)
	if !ok {
		return false
	}
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

// Delete removes the entry for key. Deleting an absent entry succeeds.
func (c *FileCache) Delete(key string) bool {
	p, ok := c.path(key)
	if !ok {
		return true
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		c.log.WithError(err).Debugf("cache delete failed %s", key)
		return false
	}
	c.log.Debugf("cache delete %s", key)
	return true
}

// Clear removes every file in the cache directory except the Placeholder. It
// keeps going after a failed removal and reports false if any failed or the
// directory could not be read.
func (c *FileCache) Clear() bool {
	entries, err := os.ReadDir(c.cfg.Dir)
	if err != nil {
		c.log.WithError(err).Debugf("failed to read cache directory %s", c.cfg.Dir)
		return false
	}

	ok := true
	for _, e := range entries {
		if e.IsDir() || e.Name() == Placeholder {
			continue
		}
		p := filepath.Join(c.cfg.Dir, e.Name())
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			c.log.WithError(err).Debugf("failed to remove cache file %s", p)
			ok = false
		}
	}
	c.log.Debugf("cleared cache directory %s", c.cfg.Dir)
	return ok
}

// Purge removes entries older than Config.Expiry and returns how many were
// removed. It does nothing when writes are disabled or Expiry is zero.
// Subdirectories and the Placeholder are left alone. Purge is best effort:
// an unreadable directory or a failed removal is logged and skipped.
func (c *FileCache) Purge() int {
	if !c.cfg.WriteEnabled || c.cfg.Expiry <= 0 {
		return 0
	}

	c.log.Debugf("purging cache entries older than %s from %s", c.cfg.Expiry, c.cfg.Dir)

	entries, err := os.ReadDir(c.cfg.Dir)
	if err != nil {
		c.log.WithError(err).Debugf("failed to read cache directory %s", c.cfg.Dir)
		return 0
	}

	now := c.now()
	removed := 0
	for _, e := range entries {
		if !e.Type().IsRegular() || e.Name() == Placeholder {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) <= c.cfg.Expiry {
			continue
		}
		p := filepath.Join(c.cfg.Dir, e.Name())
		if err := os.Remove(p); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				c.log.WithError(err).Warnf("failed to remove cache file %s", p)
			}
			continue
		}
		c.log.Debugf("removed cache file %s", p)
		removed++
	}
	return removed
}

// GetMultiple returns one value per key. Each miss gets its own copy of def.
func (c *FileCache) GetMultiple(keys []string, def []byte) map[string][]byte {
	out := make(map[string][]byte, len(keys))
	for _, k := range keys {
		out[k] = c.Get(k, bytes.Clone(def))
	}
	return out
}

// SetMultiple stores every pair, in key order, and reports whether all
// succeeded. A failure does not stop the remaining writes.
func (c *FileCache) SetMultiple(values map[string][]byte, ttl time.Duration) bool {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ok := true
	for _, k := range keys {
		if !c.Set(k, values[k], ttl) {
			ok = false
		}
	}
	return ok
}

// DeleteMultiple deletes every key and reports whether all deletes succeeded.
func (c *FileCache) DeleteMultiple(keys []string) bool {
	ok := true
	for _, k := range keys {
		if !c.Delete(k) {
			ok = false
		}
	}
	return ok
}
