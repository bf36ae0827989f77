package lock

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/gallery-captioner/internal/ports"
	"github.com/gofrs/flock"
)

var ErrLocked = errors.New("caption store is locked by another captioner process")

// FileLocker guards a caption store with an exclusive lock on "<path>.lock".
type FileLocker struct{}

var _ ports.Locker = FileLocker{}

func (FileLocker) Lock(ctx context.Context, path string) (func() error, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lockPath := path + ".lock"
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	fileLock := flock.New(lockPath)
	ok, err := fileLock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", lockPath, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, lockPath)
	}

	return func() error {
		if err := fileLock.Unlock(); err != nil {
			return fmt.Errorf("release lock %s: %w", lockPath, err)
		}
		return nil
	}, nil
}
