// Package input reads line-oriented puzzle files into parsed records.
//
// Blank lines are skipped. The first line that fails to parse aborts the read
// and no records are returned, so a corrupted file never yields a partial
// result.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadRecords parses every non-blank line of r with parse.
// Parse errors are wrapped with their 1-based line number.
func ReadRecords[T any](r io.Reader, parse func(string) (T, error)) ([]T, error) {
	var out []T
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := parse(line)
		if err != nil {
			return nil, fmt.Errorf("input: line %d: %w", n, err)
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}

	return out, nil
}

// ReadFile opens path and delegates to ReadRecords.
func ReadFile[T any](path string, parse func(string) (T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()

	recs, err := ReadRecords(f, parse)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}
