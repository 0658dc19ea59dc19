package domain

import (
	"strings"
	"unicode"
)

// NormalizeText prepares text for comparison and cache keys:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	// Compress multiple spaces into one.
	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Slugify converts a word or phrase into a filesystem-safe card identifier:
// lowercase, runs of non-alphanumeric characters collapsed to single
// hyphens, leading/trailing hyphens stripped.
func Slugify(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))

	var b strings.Builder
	b.Grow(len(text))
	prevHyphen := false
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			prevHyphen = false
			continue
		}
		if !prevHyphen {
			b.WriteRune('-')
			prevHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}
