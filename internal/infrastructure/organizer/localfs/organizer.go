// Package localfs relocates processed documents into topic-named folders
// under a single organized-output root.
package localfs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/insightlab/insightsort/internal/core/domain"
)

type Organizer struct {
	basePath string
}

func New(basePath string) (*Organizer, error) {
	if basePath == "" {
		basePath = filepath.Join("output", "organized")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create organized root: %w", err)
	}
	return &Organizer{basePath: basePath}, nil
}

func (o *Organizer) BasePath() string { return o.basePath }

// Move relocates path into the topic folder, creating the folder if absent.
// The source file is moved, not copied.
func (o *Organizer) Move(_ context.Context, path string, topic domain.Topic) (string, error) {
	folder := filepath.Join(o.basePath, topic.FolderName())
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", fmt.Errorf("create topic folder: %w", err)
	}

	dest := filepath.Join(folder, filepath.Base(path))
	if err := os.Rename(path, dest); err != nil {
		// Rename fails across filesystems; fall back to copy-then-remove.
		if copyErr := copyFile(path, dest); copyErr != nil {
			return "", fmt.Errorf("move file: %w", err)
		}
		if rmErr := os.Remove(path); rmErr != nil {
			return "", fmt.Errorf("remove source after copy: %w", rmErr)
		}
	}
	return dest, nil
}

// Remove deletes one organized file and prunes its topic folder when that
// leaves the folder empty.
func (o *Organizer) Remove(_ context.Context, organizedPath string) error {
	cleaned, err := o.containedPath(organizedPath)
	if err != nil {
		return err
	}
	if err := os.Remove(cleaned); err != nil {
		return fmt.Errorf("remove organized file: %w", err)
	}

	parent := filepath.Dir(cleaned)
	if parent == filepath.Clean(o.basePath) {
		return nil
	}
	entries, err := os.ReadDir(parent)
	if err == nil && len(entries) == 0 {
		_ = os.Remove(parent)
	}
	return nil
}

// ListFolder returns the base names of regular files in one topic folder.
func (o *Organizer) ListFolder(_ context.Context, folder string) ([]string, error) {
	cleaned, err := o.containedPath(folder)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(cleaned)
	if err != nil {
		return nil, fmt.Errorf("list topic folder: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// containedPath resolves p against the organized root and rejects anything
// escaping it. Relative paths are taken as relative to the root.
func (o *Organizer) containedPath(p string) (string, error) {
	if !filepath.IsAbs(p) {
		p = filepath.Join(o.basePath, p)
	}
	cleaned := filepath.Clean(p)
	base := filepath.Clean(o.basePath)
	if cleaned != base && !strings.HasPrefix(cleaned, base+string(filepath.Separator)) {
		return "", fmt.Errorf("path %s outside organized root", p)
	}
	return cleaned, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
