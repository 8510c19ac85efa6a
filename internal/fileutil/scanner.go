package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Candidate is a regular file found by a prefix scan.
type Candidate struct {
	// Path is the matched path as produced by the glob (relative if the prefix was)
	Path string
	// Size is the file size in bytes
	Size int64
}

// Name returns the base name of the candidate.
func (c Candidate) Name() string {
	return filepath.Base(c.Path)
}

// MatchPrefix returns the regular files matching the shell pattern "<prefix>*",
// sorted by path. Glob metacharacters inside prefix keep their meaning.
// Directories and broken symlinks are skipped. No match is not an error.
func MatchPrefix(prefix string) ([]Candidate, error) {
	pattern := filepath.ToSlash(prefix) + "*"
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid file prefix %q", prefix)
	}

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to match %s: %w", pattern, err)
	}

	candidates := make([]Candidate, 0, len(matches))
	for _, m := range matches {
		// Stat follows symlinks, so a link to a regular file is kept
		info, err := os.Stat(m)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		candidates = append(candidates, Candidate{Path: m, Size: info.Size()})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Path < candidates[j].Path
	})

	return candidates, nil
}

// IsRegularFile reports whether path names an existing regular file (symlinks followed).
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
