// Command validate provides a small CLI that validates city catalog files.
// It checks:
//   - The file is readable UTF-8 and yields a non-empty catalog
//   - Every name starts with an upper-case Cyrillic letter
//   - Names contain only Cyrillic letters, spaces, hyphens and dots
//   - No two names share the same comparison key (case, hyphen and ё/е folded)
//   - Dead ends: names whose required next letters start no city at all
//
// Usage:
//
//	go run ./validate [catalog files...]
//
// Without arguments it validates the embedded default catalog source.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/wricardo/cities-game/game/catalog"
	"github.com/wricardo/cities-game/game/engine"
)

const (
	defaultCatalog = "game/catalog/cities.txt"
	bom            = "\ufeff"
)

// ValidationResult captures the outcome of validating a single file.
// Errors make the file invalid; Info lines are reported either way.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
	Info   []string
}

func (r *ValidationResult) fail(format string, args ...interface{}) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) note(format string, args ...interface{}) {
	r.Info = append(r.Info, fmt.Sprintf(format, args...))
}

// validateCatalog loads and validates a single catalog file.
func validateCatalog(filePath string) ValidationResult {
	result := ValidationResult{
		File:  filepath.Base(filePath),
		Valid: true,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return result
	}

	if bytes.HasPrefix(data, []byte(bom)) {
		result.note("File starts with a UTF-8 byte order mark")
	}

	seen := make(map[string]int)
	blank := 0
	lineNo := 0

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, bom)
		}

		if !utf8.ValidString(line) {
			result.fail("Line %d: invalid UTF-8", lineNo)
			continue
		}

		name := strings.TrimSpace(line)
		if name == "" {
			blank++
			continue
		}
		if name != line {
			result.note("Line %d: surrounding whitespace around %q is ignored", lineNo, name)
		}

		for _, problem := range checkName(name) {
			result.fail("Line %d: %q %s", lineNo, name, problem)
		}

		key := catalog.Key(name)
		if first, dup := seen[key]; dup {
			result.fail("Line %d: %q duplicates line %d", lineNo, name, first)
			continue
		}
		seen[key] = lineNo
	}
	if err := scanner.Err(); err != nil {
		result.fail("Failed to scan file: %v", err)
		return result
	}

	if blank > 0 {
		result.note("%d blank lines skipped", blank)
	}

	cat, err := catalog.Parse(bytes.NewReader(data))
	if err != nil {
		result.fail("Catalog does not load: %v", err)
		return result
	}

	deadEnds := findDeadEnds(cat)
	for _, name := range deadEnds {
		result.note("Dead end: nothing can follow %q (%s)", name, engine.FormatLetters(engine.NextLetters(name)))
	}

	if result.Valid {
		result.note("✓ %d cities, %d dead ends", cat.Len(), len(deadEnds))
	}
	return result
}

// checkName returns the problems found in a single trimmed name
func checkName(name string) []string {
	var problems []string

	first, _ := utf8.DecodeRuneInString(name)
	if !unicode.Is(unicode.Cyrillic, first) || !unicode.IsUpper(first) {
		problems = append(problems, "does not start with an upper-case Cyrillic letter")
	}

	for _, r := range name {
		if unicode.Is(unicode.Cyrillic, r) || r == ' ' || r == '-' || r == '.' {
			continue
		}
		problems = append(problems, fmt.Sprintf("contains unexpected character %q", r))
		break
	}

	return problems
}

// findDeadEnds lists the names whose required next letters start no catalog name
func findDeadEnds(cat *catalog.Catalog) []string {
	starts := make(map[string]bool)
	for _, name := range cat.Names() {
		starts[engine.FirstLetter(name)] = true
	}

	var deadEnds []string
	for _, name := range cat.Names() {
		letters := engine.NextLetters(name)
		if !slices.ContainsFunc(letters, func(l string) bool { return starts[l] }) {
			deadEnds = append(deadEnds, name)
		}
	}
	return deadEnds
}

// main validates each catalog file given on the command line, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	files := os.Args[1:]
	if len(files) == 0 {
		files = []string{defaultCatalog}
	}

	allValid := true
	for _, file := range files {
		result := validateCatalog(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				fmt.Println("  ❌ " + err)
			}
		}
		for _, info := range result.Info {
			fmt.Println("  " + info)
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All catalogs are valid!")
	} else {
		fmt.Println("❌ Some catalogs have errors")
		os.Exit(1)
	}
}
