// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import "strings"

// Placeholder is the file that keeps an otherwise empty cache directory
// present in version control and packages. Clear and Purge never remove it,
// and no key can address it.
const Placeholder = ".gitkeep"

var keyReplacer = strings.NewReplacer(
	"/", ".",
	`\`, ".",
	"?", ".",
	"%", ".",
	"*", ".",
	":", ".",
	"|", ".",
	`"`, ".",
	"<", ".",
	">", ".",
)

// SanitizeKey maps key to a filesystem safe basename by replacing each of
// / \ ? % * : | " < > with a dot. The mapping is not reversible, so keys that
// differ only in those characters (for example "a/b" and "a:b") share one
// entry.
func SanitizeKey(key string) string {
	return keyReplacer.Replace(key)
}

// usable reports whether a sanitized name can safely be joined onto the cache
// directory.
func usable(name string) bool {
	switch name {
	case "", ".", "..", Placeholder:
		return false
	}
	return true
}
