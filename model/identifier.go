package model

import (
	"strings"
)

const (
	ScreenIdentifierFallback = "_screen"
	WidgetIdentifierFallback = "_widget"
)

// DeriveIdentifier turns a display name into a C identifier. Every character outside [A-Za-z0-9_]
// becomes an underscore, a leading digit gets an underscore prefix, and an empty result
// is replaced by fallback.
func DeriveIdentifier(name string, fallback string) string {
	var builder strings.Builder
	builder.Grow(len(name) + 1)

	for _, char := range name {
		if isIdentifierChar(char) {
			builder.WriteRune(char)
		} else {
			builder.WriteByte('_')
		}
	}

	identifier := builder.String()
	if identifier == "" {
		return fallback
	}
	if identifier[0] >= '0' && identifier[0] <= '9' {
		return "_" + identifier
	}

	return identifier
}

func isIdentifierChar(char rune) bool {
	return char == '_' ||
		(char >= 'a' && char <= 'z') ||
		(char >= 'A' && char <= 'Z') ||
		(char >= '0' && char <= '9')
}
