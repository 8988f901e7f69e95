// Package routes counts route declarations in the server source by literal
// substring matching. Nothing is parsed, so commented-out or quoted
// occurrences are counted too.
package routes

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrSourceMissing is returned when the server source file does not exist
var ErrSourceMissing = errors.New("server source not found")

// CountDeclarations sums the non-overlapping occurrences of each pattern in source
func CountDeclarations(source string, patterns []string) int {
	count := 0
	for _, p := range patterns {
		if p == "" {
			continue
		}
		count += strings.Count(source, p)
	}
	return count
}

// CountFile reads path and counts its route declarations. A missing file
// counts as zero routes and reports ErrSourceMissing.
func CountFile(path string, patterns []string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("%w: %s", ErrSourceMissing, path)
		}
		return 0, fmt.Errorf("failed to read server source: %w", err)
	}
	return CountDeclarations(string(data), patterns), nil
}
