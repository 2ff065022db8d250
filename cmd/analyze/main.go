// Command analyze prints quick, human-readable heuristics about city catalogs.
// It summarizes how many cities start with each letter, how often each letter
// is demanded as the next letter, and highlights names that end the chain
// because no city starts with any of their next letters.
//
// Usage:
//
//	go run ./cmd/analyze [catalog files...]
//
// Without arguments the embedded default catalog is analyzed.
package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/wricardo/cities-game/game/catalog"
	"github.com/wricardo/cities-game/game/engine"
)

// maxListed caps how many dead ends are printed per catalog
const maxListed = 5

// LetterStat pairs a letter with how many cities start with it and how many
// names demand it as a next letter.
type LetterStat struct {
	Letter string
	Starts int
	Demand int
}

// Analysis is the summary of a single catalog
type Analysis struct {
	Total    int
	Letters  []LetterStat
	DeadEnds []string
	Longest  string
	Shortest string
}

// analyze computes letter statistics for cat
func analyze(cat *catalog.Catalog) Analysis {
	a := Analysis{Total: cat.Len()}

	starts := make(map[string]int)
	demand := make(map[string]int)
	for _, name := range cat.Names() {
		starts[engine.FirstLetter(name)]++
		for _, l := range engine.NextLetters(name) {
			demand[l]++
		}

		n := utf8.RuneCountInString(name)
		if a.Longest == "" || n > utf8.RuneCountInString(a.Longest) {
			a.Longest = name
		}
		if a.Shortest == "" || n < utf8.RuneCountInString(a.Shortest) {
			a.Shortest = name
		}
	}

	for _, name := range cat.Names() {
		letters := engine.NextLetters(name)
		if !slices.ContainsFunc(letters, func(l string) bool { return starts[l] > 0 }) {
			a.DeadEnds = append(a.DeadEnds, name)
		}
	}

	seen := make(map[string]bool)
	for l, n := range starts {
		a.Letters = append(a.Letters, LetterStat{Letter: l, Starts: n, Demand: demand[l]})
		seen[l] = true
	}
	for l, n := range demand {
		if !seen[l] {
			a.Letters = append(a.Letters, LetterStat{Letter: l, Demand: n})
		}
	}
	slices.SortFunc(a.Letters, func(x, y LetterStat) int { return strings.Compare(x.Letter, y.Letter) })

	return a
}

// printAnalysis writes the report for a to w
func printAnalysis(w io.Writer, a Analysis) {
	fmt.Fprintf(w, "Total Cities: %d\n", a.Total)
	fmt.Fprintf(w, "Longest Name: %s\n", a.Longest)
	fmt.Fprintf(w, "Shortest Name: %s\n", a.Shortest)

	fmt.Fprintln(w, "Letter  Starts  Demand")
	for _, s := range a.Letters {
		fmt.Fprintf(w, "%-6s  %6d  %6d\n", s.Letter, s.Starts, s.Demand)
	}

	var missing []string
	for _, s := range a.Letters {
		if s.Starts == 0 {
			missing = append(missing, s.Letter)
		}
	}
	if len(missing) > 0 {
		fmt.Fprintf(w, "⚠️  WARNING: no city starts with %s\n", strings.Join(missing, ", "))
	}

	if len(a.DeadEnds) == 0 {
		fmt.Fprintln(w, "✅ Every city can be followed by another")
		return
	}

	fmt.Fprintf(w, "⚠️  %d cities end the chain:\n", len(a.DeadEnds))
	for i, name := range a.DeadEnds {
		if i == maxListed {
			fmt.Fprintf(w, "   ... and %d more\n", len(a.DeadEnds)-maxListed)
			break
		}
		fmt.Fprintf(w, "   Dead end: %s (%s)\n", name, engine.FormatLetters(engine.NextLetters(name)))
	}
}

func main() {
	files := os.Args[1:]
	if len(files) == 0 {
		cat, err := catalog.Default()
		if err != nil {
			fmt.Printf("Error loading embedded catalog: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("\n=== Analyzing embedded catalog ===")
		printAnalysis(os.Stdout, analyze(cat))
		return
	}

	for _, file := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", file)
		cat, err := catalog.Load(file)
		if err != nil {
			fmt.Printf("Error loading catalog: %v\n", err)
			continue
		}
		printAnalysis(os.Stdout, analyze(cat))
	}
}
