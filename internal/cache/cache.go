// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"bytes"
	"time"
)

// Cache is the contract shared by FileCache and Nop. None of the operations
// return errors: a failing cache behaves like an empty one.
type Cache interface {
	Get(key string, def []byte) []byte
	Set(key string, value []byte, ttl time.Duration) bool
	Has(key string) bool
	Delete(key string) bool
	Clear() bool
	Purge() int
	GetMultiple(keys []string, def []byte) map[string][]byte
	SetMultiple(values map[string][]byte, ttl time.Duration) bool
	DeleteMultiple(keys []string) bool
}

var (
	_ Cache = (*FileCache)(nil)
	_ Cache = Nop{}
)

// Nop is a Cache that stores nothing. Every Get is a miss and every Set fails.
type Nop struct{}

func (Nop) Get(_ string, def []byte) []byte               { return def }
func (Nop) Set(_ string, _ []byte, _ time.Duration) bool { return false }
func (Nop) Has(_ string) bool                             { return false }
func (Nop) Delete(_ string) bool                          { return true }
func (Nop) Clear() bool                                   { return true }
func (Nop) Purge() int                                    { return 0 }

func (Nop) GetMultiple(keys []string, def []byte) map[string][]byte {
	out := make(map[string][]byte, len(keys))
	for _, k := range keys {
		out[k] = bytes.Clone(def)
	}
	return out
}

func (Nop) SetMultiple(_ map[string][]byte, _ time.Duration) bool { return false }
func (Nop) DeleteMultiple(_ []string) bool                         { return true }
