// Package normalize provides the text canonicalization helpers shared by all
// parsers: lowercasing, accent stripping, tokenization and numeric scanning.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// numberPattern matches integers and decimals written with either a comma or
// a dot as the decimal separator ("50", "49,90", "1200.50").
var numberPattern = regexp.MustCompile(`\d+(?:[.,]\d+)?`)

// Text lowercases the input and strips diacritics, so "Relatórios" and
// "relatorios" compare equal. All phrase tables are stored in this form.
func Text(s string) string {
	lowered := strings.ToLower(strings.TrimSpace(s))
	stripped, _, err := transform.String(stripper, lowered)
	if err != nil {
		return lowered
	}
	return stripped
}

// Tokens splits normalized text into whitespace-separated tokens with
// punctuation trimmed from both ends.
func Tokens(s string) []string {
	fields := strings.Fields(Text(s))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		trimmed := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '$'
		})
		if trimmed != "" {
			tokens = append(tokens, trimmed)
		}
	}
	return tokens
}

// Numbers returns every numeric value found in the text, in order of
// appearance. Comma decimals are accepted ("49,90" parses as 49.9).
func Numbers(s string) []float64 {
	matches := numberPattern.FindAllString(s, -1)
	values := make([]float64, 0, len(matches))
	for _, m := range matches {
		if v, ok := ParseNumber(m); ok {
			values = append(values, v)
		}
	}
	return values
}

// ParseNumber parses a single numeric token, accepting a comma as the decimal
// separator.
func ParseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// IsNumeric reports whether the token is a pure number.
func IsNumeric(tok string) bool {
	if tok == "" {
		return false
	}
	return numberPattern.FindString(tok) == tok
}

// ContainsAny reports whether the normalized text contains any of the given
// normalized phrases as a substring.
func ContainsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
