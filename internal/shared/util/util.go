// # internal/shared/util/util.go
package util

import (
	"sort"
	"strings"
)

const byteOrderMark = "\uFEFF"

// SortedStringKeys returns the map's keys in sorted order.
func SortedStringKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// NormalizeLine strips a leading byte order mark, surrounding whitespace and
// a trailing carriage return from one line of input.
func NormalizeLine(line string) string {
	line = strings.TrimPrefix(line, byteOrderMark)
	return strings.TrimSpace(line)
}

// IsCommentOrBlank reports whether a normalized line carries no value. Only a
// bare "#" or "# " starts a comment; "#internal/x" is a subpath import.
func IsCommentOrBlank(line string) bool {
	return line == "" || line == "#" || strings.HasPrefix(line, "# ") || strings.HasPrefix(line, "#\t")
}
