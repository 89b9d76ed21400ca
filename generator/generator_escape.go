package generator

import (
	"fmt"
	"strings"
)

var stringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// EscapeString makes text safe inside a C string literal. Only backslash,
// double quote, newline, carriage return and tab are escaped.
func EscapeString(text string) string {
	return stringEscaper.Replace(text)
}

// HexColor formats the low 24 bits of color as six upper-case hex digits.
func HexColor(color int) string {
	return fmt.Sprintf("%06X", color&0xFFFFFF)
}
