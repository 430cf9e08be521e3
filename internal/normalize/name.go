// Package normalize folds free-text names so that labels differing only in
// accents, case or surrounding whitespace compare equal.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Name lowercases input, strips combining marks and trims surrounding whitespace.
// It is total and idempotent: Name(Name(x)) == Name(x).
func Name(input string) string {
	// Casers and transform chains carry state, so they are built per call.
	lowered := cases.Lower(language.Und).String(input)

	stripped, _, err := transform.String(stripMarks(), lowered)
	if err != nil {
		// Unreachable for valid transformers on in-memory strings; fall back to the lowered form.
		stripped = lowered
	}

	return strings.TrimSpace(stripped)
}

// Equal reports whether a and b are the same name once normalized.
func Equal(a, b string) bool {
	return Name(a) == Name(b)
}

func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}
