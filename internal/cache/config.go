// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"math"
	"time"
)

// Config controls a FileCache. It is copied at construction and cannot be
// changed afterwards.
type Config struct {
	// Dir is the flat directory holding one file per entry.
	Dir string
	// ReadEnabled gates Get. When false every Get is a miss.
	ReadEnabled bool
	// WriteEnabled gates Set and Purge, and makes New verify that Dir is
	// writable.
	WriteEnabled bool
	// Compress gzip encodes values on Set and decodes them on Get. Plain
	// entries are still readable while it is on.
	Compress bool
	// ConvertOnRead rewrites plain entries as gzip when Get finds one and
	// Compress is on.
	ConvertOnRead bool
	// Expiry is the age past which Purge removes an entry. Zero disables
	// expiry.
	Expiry time.Duration
}

// MaxExpirySeconds is the largest whole number of seconds a Duration holds.
const MaxExpirySeconds = math.MaxInt64 / int64(time.Second)

// ExpirySeconds converts a whole number of seconds into an Expiry value.
// Negative values are treated as zero. Values too large for a Duration are
// clamped to the longest representable one.
func ExpirySeconds(s int) time.Duration {
	if s <= 0 {
		return 0
	}
	if int64(s) > MaxExpirySeconds {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(s) * time.Second
}

func (c Config) enabled() bool {
	return c.ReadEnabled || c.WriteEnabled
}
