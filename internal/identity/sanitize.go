// Package identity turns user-supplied names and ids into path-safe tokens
// and derives the canonical storage path of every record.
package identity

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const (
	fallbackFolder = "Team"
	fallbackFile   = "id"
)

// invalidFileChars are rejected in file names on at least one supported
// platform. Control characters are stripped separately.
const invalidFileChars = `/\:*?"<>|`

// SanitizeFolder returns a folder-safe token for name. Spaces become
// underscores. Never returns an empty string or a dot-only token.
func SanitizeFolder(name string) string {
	cleaned := strip(name)
	cleaned = strings.ReplaceAll(cleaned, " ", "_")
	if isBlankToken(cleaned) {
		return fallbackFolder
	}
	return cleaned
}

// SanitizeFile returns a file-name-safe token for name. Never returns an
// empty string or a dot-only token.
func SanitizeFile(name string) string {
	cleaned := strip(name)
	if isBlankToken(cleaned) {
		return fallbackFile
	}
	return cleaned
}

// isBlankToken reports tokens that would vanish or climb out of their parent
// once joined into a path: empty, whitespace, "." and "..".
func isBlankToken(token string) bool {
	return strings.Trim(strings.TrimSpace(token), ".") == ""
}

func strip(name string) string {
	name = strings.TrimSpace(norm.NFC.String(name))
	if name == "" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || strings.ContainsRune(invalidFileChars, r) {
			return -1
		}
		return r
	}, name)
}
