package domain

import (
	"strings"
)

// NormalizeText prepares label text for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses runs of whitespace into one space
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

// NormalizeKey turns a feature type or species id into its canonical key
// form: normalized text with spaces and hyphens folded into underscores.
func NormalizeKey(s string) string {
	s = NormalizeText(s)
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}
