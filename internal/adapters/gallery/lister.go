package gallery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bnema/gallery-captioner/internal/domain"
	"github.com/bnema/gallery-captioner/internal/ports"
)

// Lister reports the image files directly inside a gallery directory.
// Subdirectories are not descended into.
type Lister struct {
	filter domain.ImageFilter
}

var _ ports.ImageLister = (*Lister)(nil)

func NewLister(filter domain.ImageFilter) *Lister {
	return &Lister{filter: filter}
}

func (l *Lister) ListImages(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, classify(dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrDirectoryNotFound, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, classify(dir, err)
	}

	images := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !l.filter.Match(name) {
			continue
		}

		regular, err := isRegular(dir, entry)
		if err != nil {
			return nil, classify(filepath.Join(dir, name), err)
		}
		if regular {
			images = append(images, name)
		}
	}

	return images, nil
}

func isRegular(dir string, entry fs.DirEntry) (bool, error) {
	if entry.Type().IsRegular() {
		return true, nil
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false, nil
	}

	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	return info.Mode().IsRegular(), nil
}

func classify(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", domain.ErrDirectoryNotFound, path)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s", domain.ErrPermissionDenied, path)
	default:
		return fmt.Errorf("list gallery %s: %w", path, err)
	}
}
