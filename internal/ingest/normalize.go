package ingest

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeText prepares free text (course descriptions, interest fields)
// for the external embedding trainer: Unicode NFC normalization, lowercase,
// control characters stripped, whitespace collapsed.
func NormalizeText(text string) string {
	text = norm.NFC.String(text)
	text = strings.ToLower(text)

	text = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, text)

	text = whitespaceRegex.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// CombineFields joins the interest columns of a student preference row into
// the single corpus line the embedding trainer consumes.
func CombineFields(fields ...string) string {
	var nonEmpty []string
	for _, field := range fields {
		if trimmed := strings.TrimSpace(field); trimmed != "" {
			nonEmpty = append(nonEmpty, trimmed)
		}
	}
	return NormalizeText(strings.Join(nonEmpty, " "))
}
