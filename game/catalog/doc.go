// Package catalog provides the city catalog for the Cities game.
//
// The catalog package handles:
//   - Loading city names from plain text files (one name per line)
//   - The embedded default catalog shipped with the binary
//   - Normalized comparison keys for name lookups
//   - Letter distribution helpers used by the analysis tools
//
// Catalog File Format:
//
// A catalog is a UTF-8 text file with one city name per line. Surrounding
// whitespace is trimmed, a leading byte order mark is ignored and blank lines
// are skipped. File order is preserved; when two names share a comparison key
// the first one wins on lookup.
//
// Comparison Keys:
//
// Key lower-cases a name, treats hyphen and space as the same character and
// folds "ё" into "е", so "Ростов-на-Дону", "ростов на дону" and "Орёл"/"орел"
// compare equal to their catalog entries.
//
// Usage:
//
//	cat, err := catalog.Load("cities.txt")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	entry, ok := cat.Lookup(catalog.Key("москва"))
//
// A Catalog is immutable once built and is safe to share between goroutines
// and game sessions.
package catalog
