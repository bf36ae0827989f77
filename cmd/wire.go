package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bnema/gallery-captioner/internal/adapters/gallery"
	"github.com/bnema/gallery-captioner/internal/adapters/lock"
	"github.com/bnema/gallery-captioner/internal/adapters/store"
	"github.com/bnema/gallery-captioner/internal/adapters/tui/editor"
	"github.com/bnema/gallery-captioner/internal/adapters/viewer"
	"github.com/bnema/gallery-captioner/internal/application"
	"github.com/bnema/gallery-captioner/internal/config"
	"github.com/bnema/gallery-captioner/internal/domain"
	"github.com/bnema/gallery-captioner/internal/logging"
	"github.com/bnema/gallery-captioner/internal/ports"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// dependencies holds the process-level collaborators that tests replace.
type dependencies struct {
	interactive  func() bool
	launcher     ports.ViewerLauncher
	locker       ports.Locker
	newRunner    func(title string) application.SessionRunner
	newSessionID func() string
}

func defaultDependencies() dependencies {
	return dependencies{
		interactive: func() bool {
			return isTerminal(os.Stdin) && isTerminal(os.Stdout)
		},
		launcher: viewer.NewLauncher(),
		locker:   lock.FileLocker{},
		newRunner: func(title string) application.SessionRunner {
			return editor.NewRunner(editor.WithTitle(title))
		},
		newSessionID: uuid.NewString,
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type app struct {
	cfg      config.Config
	logger   *slog.Logger
	closeLog func() error
	deps     dependencies
}

// wireApp loads configuration and builds the logger. When the terminal
// belongs to the editor, logs go to log.file or nowhere.
func wireApp(cmd *cobra.Command, v *viper.Viper, configPath string, deps dependencies, editing bool) (*app, error) {
	cfg, err := config.Load(v, configPath)
	if err != nil {
		return nil, err
	}

	var output io.Writer = cmd.ErrOrStderr()
	if editing {
		output = io.Discard
	}

	logger, closeLog, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
		Output: output,
	})
	if err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}

	logger = logger.With(slog.String("session_id", deps.newSessionID()))
	if cfg.File != "" {
		logger.Debug("config loaded", slog.String("path", cfg.File))
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		closeLog: closeLog,
		deps:     deps,
	}, nil
}

func (a *app) Close() error {
	if a.closeLog == nil {
		return nil
	}

	return a.closeLog()
}

func (a *app) openStore(galleryDir string) (ports.CaptionStore, error) {
	format, err := store.ParseFormat(a.cfg.Output.Type)
	if err != nil {
		return nil, err
	}

	return store.Open(format, store.ResolvePath(galleryDir, a.cfg.Output.Name, format))
}

func (a *app) viewerSpec() (domain.ViewerSpec, error) {
	return domain.NewViewerSpec(a.cfg.Viewer.Command, a.cfg.Viewer.Args)
}

func (a *app) service(opts ...application.ServiceOption) *application.Service {
	lister := gallery.NewLister(domain.NewImageFilter(a.cfg.Gallery.Extensions))

	base := []application.ServiceOption{
		application.WithLocker(a.deps.locker),
		application.WithLogger(a.logger),
	}

	return application.NewService(lister, a.deps.launcher, append(base, opts...)...)
}
