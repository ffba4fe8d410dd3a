package utils

import (
	"strings"
)

// ExtractHashtags returns the hashtags of text without their leading '#',
// lower-cased and de-duplicated in order of first appearance.
// Example: "#Go is fun #rust #go" -> ["go", "rust"].
func ExtractHashtags(text string) []string {
	out := make([]string, 0)
	seen := make(map[string]struct{})
	for _, word := range strings.Fields(text) {
		if !strings.HasPrefix(word, "#") {
			continue
		}
		tag := strings.ToLower(strings.TrimLeft(word, "#"))
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// NormalizeTag turns user input such as "#Go" or " go " into the stored form.
func NormalizeTag(raw string) string {
	return strings.ToLower(strings.TrimLeft(strings.TrimSpace(raw), "#"))
}
