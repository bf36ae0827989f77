package ports

import "context"

type ViewerLauncher interface {
	Spawn(ctx context.Context, command string, args []string) (ViewerProcess, error)
}

// ViewerProcess is a running viewer. Terminate is safe to call after the
// process has exited on its own.
type ViewerProcess interface {
	PID() int
	Terminate() error
}
