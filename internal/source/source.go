// Package source acquires the before/after document pair the diff
// pipeline runs over: from a pair of files, from a file plus a unified
// diff patch, or from git history.
package source

import (
	"fmt"
	"os"
)

// Pair holds the two document versions to compare, plus where the
// after side came from for display purposes.
type Pair struct {
	Before string
	After  string
	Label  string
}

// LoadFiles reads a before/after pair from disk.
func LoadFiles(beforePath, afterPath string) (*Pair, error) {
	before, err := os.ReadFile(beforePath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", beforePath, err)
	}
	after, err := os.ReadFile(afterPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", afterPath, err)
	}
	return &Pair{
		Before: string(before),
		After:  string(after),
		Label:  fmt.Sprintf("%s → %s", beforePath, afterPath),
	}, nil
}
