// Package names reads the operator-supplied list of names to resolve.
package names

import (
	"bufio"
	"os"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 📖 Read loads newline-separated names from path. Leading and trailing
// whitespace is trimmed and blank lines are ignored; duplicates are kept and
// resolved independently. A missing file or a file with no usable names is an
// error: the whole run is pointless without queries.
func Read(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Errorf("opening names file: %w", err)
	}
	defer f.Close()

	var queries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		queries = append(queries, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Errorf("reading names file: %w", err)
	}
	if len(queries) == 0 {
		return nil, errors.Errorf("names file %s contains no names", path)
	}
	return queries, nil
}
