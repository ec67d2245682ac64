// Package textutil holds the text normalization applied before keyword and
// fuzzy matching, and the sanitizer for externally generated text.
package textutil

import "strings"

// Normalize lower-cases s, replaces every character outside [a-z0-9] with a
// space, collapses consecutive whitespace, and trims. Accents and punctuation
// therefore never affect matching.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	lowered := strings.ToLower(s)
	var builder strings.Builder
	builder.Grow(len(lowered))
	lastSpace := true
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			builder.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			builder.WriteByte(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(builder.String())
}

// Sanitize strips literal asterisks and zero-width control characters
// (U+200B through U+200F) left behind by generative backends, then collapses
// whitespace. It is only applied to externally generated text.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	var builder strings.Builder
	builder.Grow(len(s))
	for _, r := range s {
		if r == '*' || (r >= '\u200b' && r <= '\u200f') {
			continue
		}
		builder.WriteRune(r)
	}
	return strings.Join(strings.Fields(builder.String()), " ")
}
