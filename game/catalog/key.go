package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var keyReplacer = strings.NewReplacer("-", " ", "ё", "е")

// Key returns the comparison key for a city name or player input.
// Casers keep internal state, so a fresh one is built per call.
func Key(s string) string {
	return keyReplacer.Replace(cases.Lower(language.Russian).String(s))
}
