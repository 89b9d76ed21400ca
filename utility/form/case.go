package form

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CaseParser splits s into lower-case segments on case changes and on every
// character that is neither a letter nor a digit.
func CaseParser(s string) []string {
	segments := make([]string, 0)
	var current strings.Builder
	previousLower := false

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			// * separators end the current segment
			if current.Len() > 0 {
				segments = append(segments, current.String())
				current.Reset()
			}
			previousLower = false
			continue
		}

		// * split camel humps
		if unicode.IsUpper(r) && previousLower && current.Len() > 0 {
			segments = append(segments, current.String())
			current.Reset()
		}
		current.WriteRune(unicode.ToLower(r))
		previousLower = unicode.IsLower(r) || unicode.IsDigit(r)
	}

	// * add last segment
	if current.Len() > 0 {
		segments = append(segments, current.String())
	}

	return segments
}

// ToSnakeCase converts a display name such as "Main Screen" to "main_screen".
func ToSnakeCase(s string) string {
	return strings.Join(CaseParser(s), "_")
}

// ToUpperCase upper-cases an identifier for preprocessor symbols.
func ToUpperCase(s string) string {
	return cases.Upper(language.Und).String(s)
}

// ToTitleCase converts a symbol such as "SPACE_EVENLY" to "Space Evenly".
func ToTitleCase(s string) string {
	caser := cases.Title(language.English)
	return caser.String(strings.Join(CaseParser(s), " "))
}
