package viewer

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"testing"
	"time"

	"github.com/bnema/gallery-captioner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnMissingBinaryReportsSpawnError(t *testing.T) {
	t.Parallel()

	_, err := NewLauncher().Spawn(context.Background(), "definitely-not-a-viewer-binary", []string{"a.jpg"})
	require.ErrorIs(t, err, domain.ErrSpawn)
	assert.ErrorContains(t, err, "definitely-not-a-viewer-binary")
}

func TestSpawnPassesArgsAndImagePath(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotArgs []string
	launcher := &Launcher{
		lookPath: func(file string) (string, error) { return "/usr/bin/" + file, nil },
		start: func(cmd *exec.Cmd) error {
			gotPath = cmd.Path
			gotArgs = cmd.Args
			return errors.New("stop before exec")
		},
		grace: time.Millisecond,
	}

	_, err := launcher.Spawn(context.Background(), "feh", []string{"--scale-down", "/g/a.jpg"})
	require.ErrorIs(t, err, domain.ErrSpawn)
	assert.Equal(t, "/usr/bin/feh", gotPath)
	assert.Equal(t, []string{"/usr/bin/feh", "--scale-down", "/g/a.jpg"}, gotArgs)
}

func TestSpawnRespectsCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLauncher().Spawn(ctx, "sleep", []string{"5"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestTerminateStopsRunningViewer(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX sleep binary")
	}
	if _, err := exec.LookPath("sleep"); err != nil {
		t.Skip("sleep not available")
	}
	t.Parallel()

	process, err := NewLauncher().Spawn(context.Background(), "sleep", []string{"30"})
	require.NoError(t, err)
	assert.NotZero(t, process.PID())

	started := time.Now()
	require.NoError(t, process.Terminate())
	assert.Less(t, time.Since(started), 5*time.Second)

	viewer := process.(*Process)
	require.Eventually(t, viewer.Exited, 2*time.Second, 10*time.Millisecond)

	// Terminating an exited viewer is a no-op.
	require.NoError(t, process.Terminate())
}

func TestTerminateAfterViewerExitedIsNoop(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX true binary")
	}
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not available")
	}
	t.Parallel()

	process, err := NewLauncher().Spawn(context.Background(), "true", nil)
	require.NoError(t, err)

	viewer := process.(*Process)
	require.Eventually(t, viewer.Exited, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, process.Terminate())
}
