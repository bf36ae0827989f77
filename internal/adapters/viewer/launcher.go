package viewer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/bnema/gallery-captioner/internal/domain"
	"github.com/bnema/gallery-captioner/internal/ports"
)

const defaultGracePeriod = 2 * time.Second

type startFunc func(cmd *exec.Cmd) error

// Launcher starts image viewers without waiting for them. The viewer gets no
// stdin and its output goes to the null device so it cannot draw over the
// editor.
type Launcher struct {
	lookPath func(file string) (string, error)
	start    startFunc
	grace    time.Duration
}

var _ ports.ViewerLauncher = (*Launcher)(nil)

func NewLauncher() *Launcher {
	return &Launcher{
		lookPath: exec.LookPath,
		start:    func(cmd *exec.Cmd) error { return cmd.Start() },
		grace:    defaultGracePeriod,
	}
}

func (l *Launcher) Spawn(ctx context.Context, command string, args []string) (ports.ViewerProcess, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := l.lookPath(command)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrSpawn, command, err)
	}

	// Not bound to ctx: the viewer window outlives the caller's context.
	cmd := exec.Command(path, args...)

	if err := l.start(cmd); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrSpawn, command, err)
	}

	process := &Process{cmd: cmd, done: make(chan struct{}), grace: l.grace}
	go process.reap()

	return process, nil
}

type Process struct {
	cmd   *exec.Cmd
	done  chan struct{}
	grace time.Duration
}

var _ ports.ViewerProcess = (*Process)(nil)

func (p *Process) PID() int {
	if p.cmd.Process == nil {
		return 0
	}

	return p.cmd.Process.Pid
}

func (p *Process) Exited() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Terminate asks the viewer to exit and kills it if it is still running after
// the grace period. It never waits longer than that.
func (p *Process) Terminate() error {
	if p.Exited() {
		return nil
	}

	if err := p.cmd.Process.Signal(syscall.SIGTERM); err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			return nil
		}
		return p.kill()
	}

	select {
	case <-p.done:
		return nil
	case <-time.After(p.grace):
		return p.kill()
	}
}

func (p *Process) kill() error {
	if err := p.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("kill viewer %d: %w", p.PID(), err)
	}

	return nil
}

func (p *Process) reap() {
	_ = p.cmd.Wait()
	close(p.done)
}
