// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"

	"github.com/staranto/filecache/internal/config"
)

// InitLogger sets up Apex with a custom handler and a log level from the
// FCACHE_LOG env variable, then the "log" config key.
func InitLogger() {
	level := os.Getenv("FCACHE_LOG")
	if level == "" {
		level, _ = config.GetString("log", "ERROR")
	}
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = log.ErrorLevel
	}
	log.SetHandler(NewCustomHandler(os.Stderr))
	log.SetLevel(lvl)
}

// CustomHandler formats log messages as single lines. Stdout is reserved
// for cache values, so it writes to the configured writer, normally stderr.
type CustomHandler struct {
	mu sync.Mutex
	w  io.Writer
}

func NewCustomHandler(w io.Writer) *CustomHandler {
	return &CustomHandler{w: w}
}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	timestamp := e.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	level := strings.ToUpper(e.Level.String())

	var b strings.Builder
	fmt.Fprintf(&b, "%s %.1s %s", timestamp.Format("2006-01-02 15:04:05"), level, e.Message)

	names := e.Fields.Names()
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, " %s=%v", name, e.Fields.Get(name))
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, _ = io.WriteString(h.w, b.String())
	return nil
}
