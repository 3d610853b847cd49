package model

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Team names arrive with inconsistent spelling across the fixture and roster
// feeds: "Fenerbahçe HDI Sigorta" vs "FENERBAHCE HDI SIGORTA", stray
// punctuation, Turkish dotted/dotless I variants. CanonicalName is the join
// key that makes them meet.

var turkishUpper = cases.Upper(language.Turkish)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// CanonicalName folds a team name to its canonical form: Turkish-locale
// uppercase (plain ToUpper maps "i" to "I" instead of "İ"), combining marks
// stripped, every non-alphanumeric rune dropped. Total and idempotent.
func CanonicalName(name string) string {
	s := turkishUpper.String(name)
	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
