// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"time"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v2"

	"github.com/staranto/filecache/internal/cacheutil"
	"github.com/staranto/filecache/internal/config"
)

// Options controls how a listing is rendered.
type Options struct {
	// Format is one of text, json or yaml.
	Format string
	// Filter is a glob matched against entry names. Empty matches all.
	Filter string
	Titles bool
	Color  bool
	// Expiry marks entries a purge would remove. Zero disables the marker.
	Expiry time.Duration
	Now    time.Time
}

// Formats lists the accepted values for Options.Format.
var Formats = []string{"text", "json", "yaml"}

// FilterEntries keeps the entries whose name matches the glob pattern.
func FilterEntries(entries []cacheutil.Entry, pattern string) ([]cacheutil.Entry, error) {
	if pattern == "" {
		return entries, nil
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", pattern, err)
	}

	var kept []cacheutil.Entry
	for _, e := range entries {
		if ok, _ := filepath.Match(pattern, e.Name); ok {
			kept = append(kept, e)
		}
	}
	return kept, nil
}

// Spit renders entries to w in the requested format.
func Spit(entries []cacheutil.Entry, opts Options, w io.Writer) error {
	entries, err := FilterEntries(entries, opts.Filter)
	if err != nil {
		return err
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	log.Debugf("rendering %d entries as %s", len(entries), opts.Format)

	switch opts.Format {
	case "json":
		if entries == nil {
			entries = []cacheutil.Entry{}
		}
		out, err := json.Marshal(entries)
		if err != nil {
			return fmt.Errorf("failed to marshal entries: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case "yaml":
		out, err := yaml.Marshal(entries)
		if err != nil {
			return fmt.Errorf("failed to marshal entries: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		TableWriter(entries, opts, w)
		return nil
	}
}

// TableWriter renders entries in a tabular form honoring color and titles.
func TableWriter(entries []cacheutil.Entry, opts Options, w io.Writer) {
	if len(entries) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	pad, _ := config.GetInt("padding", 2)

	var rows [][]string
	for _, e := range entries {
		rows = append(rows, row(e, opts))
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Rows(rows...)

	if opts.Titles {
		t = t.Headers(headers(opts)...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

func headers(opts Options) []string {
	h := []string{"name", "size", "age", "gzip"}
	if opts.Expiry > 0 {
		h = append(h, "expired")
	}
	return h
}

func row(e cacheutil.Entry, opts Options) []string {
	r := []string{
		e.Name,
		humanize.Bytes(uint64(e.Size)),
		humanize.RelTime(e.ModTime, opts.Now, "ago", "from now"),
		strconv.FormatBool(e.Compressed),
	}
	if opts.Expiry > 0 {
		r = append(r, strconv.FormatBool(e.Expired(opts.Now, opts.Expiry)))
	}
	return r
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}
