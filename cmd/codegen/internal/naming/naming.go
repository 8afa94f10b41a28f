// Package naming turns minecraft-data display names and version strings into
// identifiers for generated palette code.
package naming

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ClassPrefix is prepended to the dotless version to name a palette class.
const ClassPrefix = "EntityPalette"

// ErrInvalidIdentifier is returned when a display name has nothing left that
// can start an identifier once sanitized.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// Capitalize upper-cases the first character of every space-separated word
// and leaves the rest of each word alone.
func Capitalize(text string) string {
	parts := strings.Split(text, " ")
	for i, part := range parts {
		r, size := utf8.DecodeRuneInString(part)
		if size == 0 {
			continue
		}
		parts[i] = string(unicode.ToUpper(r)) + part[size:]
	}
	return strings.Join(parts, " ")
}

// RemoveSpaces drops every space and trims surrounding whitespace.
func RemoveSpaces(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, " ", ""))
}

// FormatName converts a display name such as "zombie villager" into
// "ZombieVillager". Characters other than spaces are passed through; use
// Identifier when the result has to be a valid identifier.
func FormatName(text string) string {
	return RemoveSpaces(Capitalize(text))
}

// FormatVersion strips the dots from a version: "1.18.1" becomes "1181".
func FormatVersion(version string) string {
	return strings.TrimSpace(strings.ReplaceAll(version, ".", ""))
}

func FormatClassName(version string) string {
	return ClassPrefix + FormatVersion(version)
}

// Identifier formats a display name and keeps only letters, digits and
// underscores. A result that is empty or starts with a digit is rejected.
func Identifier(displayName string) (string, error) {
	name := strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, FormatName(displayName))

	if name == "" {
		return "", fmt.Errorf("%w: %q has no identifier characters", ErrInvalidIdentifier, displayName)
	}
	if r, _ := utf8.DecodeRuneInString(name); unicode.IsDigit(r) {
		return "", fmt.Errorf("%w: %q starts with a digit", ErrInvalidIdentifier, displayName)
	}
	return name, nil
}
