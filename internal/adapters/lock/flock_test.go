package lock

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockIsExclusiveUntilReleased(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "captions.csv")
	locker := FileLocker{}

	unlock, err := locker.Lock(context.Background(), path)
	require.NoError(t, err)

	_, err = locker.Lock(context.Background(), path)
	require.ErrorIs(t, err, ErrLocked)

	require.NoError(t, unlock())

	_, statErr := os.Stat(path + ".lock")
	assert.NoError(t, statErr)

	unlockAgain, err := locker.Lock(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, unlockAgain())
}
