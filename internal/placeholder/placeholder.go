// Package placeholder implements {{key}} substitution for contract templates.
//
// The delimiter pair is defined once (Open/Close) and shared by Format, which
// editors use to insert placeholders, and by the matching pattern. Keeping a
// single definition is what makes Extract(Format(k)) round-trip.
package placeholder

import (
	"regexp"
	"strings"
)

// Placeholder delimiters.
const (
	Open  = "{{"
	Close = "}}"
)

// pattern matches {{identifier}} where identifier is one or more word characters.
// Malformed tokens (missing braces, nested braces) simply don't match.
var pattern = regexp.MustCompile(regexp.QuoteMeta(Open) + `(\w+)` + regexp.QuoteMeta(Close))

// Format returns the canonical serialization of key.
func Format(key string) string {
	return Open + key + Close
}

// Extract returns the unique placeholder keys in content, in order of first occurrence.
func Extract(content string) []string {
	matches := pattern.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	keys := make([]string, 0, len(matches))
	for _, m := range matches {
		key := m[1]
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}

// Replace substitutes every occurrence of {{key}} for each key present in values.
// Keys absent from values are left verbatim in the output. Replace never fails.
func Replace(content string, values map[string]string) string {
	if len(values) == 0 || !strings.Contains(content, Open) {
		return content
	}

	// Single pass: replacement values are never rescanned, so a value that
	// itself looks like a placeholder is emitted literally.
	return pattern.ReplaceAllStringFunc(content, func(match string) string {
		key := match[len(Open) : len(match)-len(Close)]
		value, ok := values[key]
		if !ok {
			return match
		}
		return value
	})
}

// Unknown returns the keys present in content for which known reports false.
// A nil known func treats every key as unknown.
func Unknown(content string, known func(key string) bool) []string {
	var out []string
	for _, key := range Extract(content) {
		if known == nil || !known(key) {
			out = append(out, key)
		}
	}
	return out
}

// Missing returns the keys present in content that have no entry in values.
func Missing(content string, values map[string]string) []string {
	return Unknown(content, func(key string) bool {
		_, ok := values[key]
		return ok
	})
}
