package dataprocessing

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"harcli/internal/errors"
)

// meanStdPattern selects the features whose means make it into the tidy
// table: any raw name containing mean() or std().
var meanStdPattern = regexp.MustCompile(`mean\(\)|std\(\)`)

// FeatureEntry is one declared feature: its 1-based column position in the
// raw measurement matrix and its raw name.
type FeatureEntry struct {
	Position int
	RawName  string
}

// Catalog holds the ordered feature declarations and the derived subset of
// columns to keep. Immutable once parsed.
type Catalog struct {
	Entries []FeatureEntry
	// kept holds the 0-based indexes of the mean()/std() columns, in
	// original relative order.
	kept []int
}

// LoadCatalog reads and parses the feature catalog at path.
func LoadCatalog(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewStorageError(fmt.Sprintf("cannot open feature catalog %s", path), err)
	}
	defer file.Close()

	catalog, err := ParseCatalog(file)
	if err != nil {
		return nil, fmt.Errorf("parse feature catalog %s: %w", path, err)
	}
	return catalog, nil
}

// ParseCatalog parses feature declarations, one per non-comment line, each
// holding a 1-based position and a name token. Lines whose first
// non-whitespace character is '#' are skipped. Positions must be dense,
// 1..N in file order.
func ParseCatalog(r io.Reader) (*Catalog, error) {
	catalog := &Catalog{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, errors.NewParseError(
				fmt.Sprintf("feature line %d does not split into position and name: %q", lineNo, line), nil)
		}

		position, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, errors.NewParseError(
				fmt.Sprintf("feature line %d has non-integer position %q", lineNo, fields[0]), err)
		}
		if position != len(catalog.Entries)+1 {
			return nil, errors.NewParseError(
				fmt.Sprintf("feature line %d declares position %d, expected %d",
					lineNo, position, len(catalog.Entries)+1), nil)
		}

		entry := FeatureEntry{Position: position, RawName: fields[1]}
		if meanStdPattern.MatchString(entry.RawName) {
			catalog.kept = append(catalog.kept, position-1)
		}
		catalog.Entries = append(catalog.Entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewStorageError("reading feature catalog", err)
	}

	return catalog, nil
}

// Size returns the number of declared features, i.e. the expected width of
// every raw measurement row.
func (c *Catalog) Size() int {
	return len(c.Entries)
}

// KeptIndexes returns the 0-based column indexes that survive the
// mean()/std() filter, in original relative order.
func (c *Catalog) KeptIndexes() []int {
	return c.kept
}

// KeptNames returns the raw names of the kept columns, in filtered order.
func (c *Catalog) KeptNames() []string {
	names := make([]string, len(c.kept))
	for i, idx := range c.kept {
		names[i] = c.Entries[idx].RawName
	}
	return names
}
