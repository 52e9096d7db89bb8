package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// allowedPatterns are the dataset file types the tool accepts.
var allowedPatterns = []string{"*.csv", "*.xlsx", "*.xls"}

// ResolveGlobs expands dataset arguments that may contain ** patterns.
// Plain paths pass through untouched so missing files surface as read
// errors, not as silently empty globs.
func ResolveGlobs(patterns []string) ([]string, error) {
	var paths []string
	for _, pattern := range patterns {
		if !hasGlobMeta(pattern) {
			paths = append(paths, pattern)
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", pattern, err)
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

func hasGlobMeta(pattern string) bool {
	for _, r := range pattern {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

// NewestDataset returns the most recently modified dataset file in dir,
// considering only the allowed file types.
func NewestDataset(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read dataset dir: %w", err)
	}

	type candidate struct {
		path string
		mod  int64
	}
	var candidates []candidate
	for _, entry := range entries {
		if entry.IsDir() || !matchesAllowed(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		candidates = append(candidates, candidate{
			path: filepath.Join(dir, entry.Name()),
			mod:  info.ModTime().UnixNano(),
		})
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("no dataset found in %s", dir)
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].mod > candidates[j].mod })
	return candidates[0].path, nil
}

func matchesAllowed(name string) bool {
	for _, pattern := range allowedPatterns {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
