package utils

import (
	"strings"
	"unicode"
)

// SanitizeIdentifier trims whitespace and strips control characters from
// identifier-ish input (device ids, branch names, login numbers).
func SanitizeIdentifier(input string) string {
	trimmed := strings.TrimSpace(input)

	var result strings.Builder
	for _, r := range trimmed {
		if unicode.IsPrint(r) {
			result.WriteRune(r)
		}
	}

	return result.String()
}
