package editor

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/gallery-captioner/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedModel = errors.New("unexpected final editor model type")

// Runner drives an EditSession from the terminal. It satisfies
// application.SessionRunner.
type Runner struct {
	input     io.Reader
	output    io.Writer
	title     string
	altScreen bool
}

type Option func(*Runner)

// WithIO overrides the terminal streams, mostly for tests.
func WithIO(input io.Reader, output io.Writer) Option {
	return func(r *Runner) {
		r.input = input
		r.output = output
	}
}

func WithTitle(title string) Option {
	return func(r *Runner) {
		r.title = title
	}
}

func WithoutAltScreen() Option {
	return func(r *Runner) {
		r.altScreen = false
	}
}

func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		title:     "Gallery captions",
		altScreen: true,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Runner) Run(ctx context.Context, session *application.EditSession) error {
	defer session.Close()

	if session.State() == application.StateExiting {
		return nil
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if r.altScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if r.input != nil {
		programOpts = append(programOpts, tea.WithInput(r.input))
	}
	if r.output != nil {
		programOpts = append(programOpts, tea.WithOutput(r.output))
	}

	p := tea.NewProgram(newModel(ctx, session, r.title), programOpts...)
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run editor: %w", err)
	}

	if _, ok := finalModel.(model); !ok {
		return ErrUnexpectedModel
	}

	return nil
}
