package catalog

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"unicode/utf8"
)

var (
	ErrEmptyCatalog = errors.New("catalog contains no cities")
)

//go:embed cities.txt
var defaultCities string

// Entry is a single catalog city with its comparison key
type Entry struct {
	Name string `json:"name"`
	Key  string `json:"key"`
}

// Catalog is an immutable ordered list of known city names
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// New builds a catalog from the given names, trimming whitespace and skipping blanks
func New(names []string) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(names)),
		index:   make(map[string]int, len(names)),
	}

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		key := Key(name)
		if _, exists := c.index[key]; !exists {
			c.index[key] = len(c.entries)
		}
		c.entries = append(c.entries, Entry{Name: name, Key: key})
	}

	if len(c.entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	return c, nil
}

// Parse reads a catalog with one city name per line
func Parse(r io.Reader) (*Catalog, error) {
	var names []string

	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	return New(names)
}

// Load reads a catalog file from disk
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Default returns the catalog embedded in the binary
func Default() (*Catalog, error) {
	return Parse(strings.NewReader(defaultCities))
}

// Len returns the number of cities in the catalog
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of all entries in file order
func (c *Catalog) Entries() []Entry {
	return slices.Clone(c.entries)
}

// Names returns a copy of all city names in file order
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}

// Lookup finds the first entry with the given comparison key
func (c *Catalog) Lookup(key string) (Entry, bool) {
	i, ok := c.index[key]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Contains reports whether the input matches a catalog city after normalization
func (c *Catalog) Contains(input string) bool {
	_, ok := c.index[Key(input)]
	return ok
}

// LetterCounts returns how many cities start with each first letter
func (c *Catalog) LetterCounts() map[string]int {
	counts := make(map[string]int)
	for _, e := range c.entries {
		r, _ := utf8.DecodeRuneInString(e.Name)
		counts[string(r)]++
	}
	return counts
}
