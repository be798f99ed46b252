// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"errors"
	"fmt"
)

var (
	ErrNoDir       = errors.New("cache directory not configured")
	ErrNotDir      = errors.New("cache path is not a directory")
	ErrNotWritable = errors.New("cache directory is not writable")
)

// ConfigurationError reports a cache directory that cannot be used. It is
// only ever returned from New and is not meant to be retried.
type ConfigurationError struct {
	Op   string
	Path string
	Err  error
}

func (e *ConfigurationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("cache %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("cache %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
