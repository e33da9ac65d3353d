// Package textnorm holds the pure text-cleaning helpers shared by extraction
// and both classifier families.
package textnorm

import (
	"path/filepath"
	"strings"
)

// SupportedExtensions lists the file types the extractor gateway dispatches
// on, lower-cased with leading dot.
var SupportedExtensions = []string{".pdf", ".txt", ".docx", ".xlsx"}

// Normalize collapses whitespace runs to single spaces, drops everything
// outside the printable ASCII range and trims the ends. Idempotent; empty
// input yields "".
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(text))
	pendingSpace := false
	for _, r := range text {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f':
			pendingSpace = b.Len() > 0
		case r >= 0x20 && r <= 0x7e:
			if pendingSpace {
				b.WriteByte(' ')
				pendingSpace = false
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Truncate keeps the first maxWords space-delimited tokens. maxWords <= 0
// yields the empty string.
func Truncate(text string, maxWords int) string {
	if maxWords <= 0 {
		return ""
	}
	words := strings.Fields(text)
	if len(words) <= maxWords {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:maxWords], " ")
}

// IsSupportedPath reports whether the file extension is one the gateway can
// dispatch, case-insensitively.
func IsSupportedPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}
