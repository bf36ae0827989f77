// Package atomicfile replaces files through a sibling temp file and rename, so
// a failed write never truncates the previous content.
package atomicfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const dirMode = 0o755

// WriteFile writes data to a temp file next to path and renames it over path.
func WriteFile(path string, data []byte, mode os.FileMode) error {
	return replace(path, mode, func(tempFile *os.File) error {
		if _, err := tempFile.Write(data); err != nil {
			return fmt.Errorf("write temp file: %w", err)
		}
		return nil
	})
}

// Replace hands build the path of an empty temp file next to path. When build
// succeeds the temp file is renamed over path; otherwise it is removed.
func Replace(path string, mode os.FileMode, build func(tempPath string) error) error {
	return replace(path, mode, func(tempFile *os.File) error {
		tempName := tempFile.Name()
		if err := tempFile.Close(); err != nil {
			return fmt.Errorf("close temp file: %w", err)
		}
		return build(tempName)
	})
}

func replace(path string, mode os.FileMode, fill func(tempFile *os.File) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, tempPattern(path))
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		_ = tempFile.Close()
		if cleanup {
			_ = os.Remove(tempName)
			_ = os.Remove(tempName + "-journal")
		}
	}()

	if err := fill(tempFile); err != nil {
		return err
	}

	if err := tempFile.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Chmod(tempName, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}

	cleanup = false
	return nil
}

func tempPattern(path string) string {
	return "." + filepath.Base(path) + "-*.tmp"
}
