package engine

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NextLetters derives the set of letters the next city must start with from
// the last letter of an accepted city name.
//
//	ь       -> letter before it
//	ы       -> letter before it, Ы
//	й       -> Й, И
//	ё       -> Ё, Е
//	Ъ       -> Ъ (only the uppercase form is special-cased)
//	other   -> the letter itself
//
// Letters are returned uppercase. A one-letter name ending in ь or ы has no
// letter before it and falls through to the last case.
func NextLetters(city string) []string {
	runes := []rune(city)
	if len(runes) == 0 {
		return nil
	}

	last := runes[len(runes)-1]
	hasPrev := len(runes) > 1

	switch {
	case last == 'ь' && hasPrev:
		return []string{upperLetter(runes[len(runes)-2])}
	case last == 'ы' && hasPrev:
		return []string{upperLetter(runes[len(runes)-2]), "Ы"}
	case last == 'й':
		return []string{"Й", "И"}
	case last == 'ё':
		return []string{"Ё", "Е"}
	case last == 'Ъ':
		return []string{"Ъ"}
	default:
		return []string{upperLetter(last)}
	}
}

// FirstLetter returns the first letter of s, upper-cased, or "" for empty input
func FirstLetter(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	return upperLetter(r)
}

// FormatLetters joins candidate letters for the "next city" message
func FormatLetters(letters []string) string {
	return strings.Join(letters, letterSeparator)
}

func upperLetter(r rune) string {
	return cases.Upper(language.Russian).String(string(r))
}
