package config

import "strings"

// lineKey returns the key assigned on a config line, or "" for blank lines,
// comments and malformed lines.
func lineKey(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return ""
	}
	key, _, ok := strings.Cut(trimmed, "=")
	if !ok {
		return ""
	}
	return strings.TrimSpace(key)
}

// Set replaces the first assignment of key in place or appends key=value.
// It reports whether the key already existed.
func Set(lines []string, key, value string) ([]string, bool) {
	if strings.ContainsAny(value, " \t") {
		value = `"` + value + `"`
	}

	for i, line := range lines {
		if lineKey(line) == key {
			lines[i] = key + "=" + value
			return lines, true
		}
	}

	return append(lines, key+"="+value), false
}

// Unset drops every line assigning key. It reports whether one was removed.
func Unset(lines []string, key string) ([]string, bool) {
	out := make([]string, 0, len(lines))
	removed := false

	for _, line := range lines {
		if lineKey(line) == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}
