// Package scan collects supported source documents from an input directory.
package scan

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/insightlab/insightsort/internal/infrastructure/textnorm"
)

// Directory walks root recursively and returns the paths of every regular
// file with a supported extension, in walk order.
func Directory(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && textnorm.IsSupportedPath(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	return paths, nil
}

// Dedupe drops duplicate paths while preserving first-seen order.
func Dedupe(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := paths[:0]
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
