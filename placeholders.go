package lawdoc

import "github.com/alnah/go-lawdoc/internal/placeholder"

// FormatPlaceholder returns the canonical "{{key}}" form of key.
func FormatPlaceholder(key string) string {
	return placeholder.Format(key)
}

// ExtractPlaceholders returns the distinct placeholder keys in content, in
// first-occurrence order.
func ExtractPlaceholders(content string) []string {
	return placeholder.Extract(content)
}

// ReplacePlaceholders substitutes every key in values. Placeholders without
// a value are left verbatim. Values are inserted as-is.
func ReplacePlaceholders(content string, values map[string]string) string {
	return placeholder.Replace(content, values)
}

// MissingPlaceholders returns the placeholders in content that values does
// not cover.
func MissingPlaceholders(content string, values map[string]string) []string {
	return placeholder.Missing(content, values)
}
