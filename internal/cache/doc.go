// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package cache implements a flat, file-backed key/value cache. Each entry is
// a single file named after its sanitized key, optionally gzip encoded.
// Expiry is global and driven only by file modification time: entries are
// removed by Purge, never lazily on read, so a stale entry keeps being served
// until a purge pass sweeps it.
//
// The cache is advisory. Per-operation filesystem failures degrade to a miss
// or a false result and are never returned as errors. Only construction can
// fail, with a *ConfigurationError.
//
// There is no locking. Concurrent writers to the same key race and the last
// rename wins.
package cache
