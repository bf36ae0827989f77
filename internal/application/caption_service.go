package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bnema/gallery-captioner/internal/domain"
	"github.com/bnema/gallery-captioner/internal/logging"
	"github.com/bnema/gallery-captioner/internal/ports"
)

var ErrNoSessionRunner = errors.New("edit mode requires a session runner")

// SessionRunner drives an EditSession until it reaches StateExiting.
type SessionRunner interface {
	Run(ctx context.Context, session *EditSession) error
}

type Service struct {
	lister   ports.ImageLister
	launcher ports.ViewerLauncher
	locker   ports.Locker
	runner   SessionRunner
	logger   *slog.Logger
}

type ServiceOption func(*Service)

func WithLocker(locker ports.Locker) ServiceOption {
	return func(s *Service) { s.locker = locker }
}

func WithSessionRunner(runner SessionRunner) ServiceOption {
	return func(s *Service) { s.runner = runner }
}

func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) { s.logger = logger }
}

func NewService(lister ports.ImageLister, launcher ports.ViewerLauncher, opts ...ServiceOption) *Service {
	service := &Service{lister: lister, launcher: launcher}
	for _, opt := range opts {
		opt(service)
	}
	if service.logger == nil {
		service.logger = logging.NewNop()
	}

	return service
}

// Sync lists the gallery, loads previous captions and reconciles them. It
// never writes.
func (s *Service) Sync(ctx context.Context, cmd SyncCommand) (SyncResult, error) {
	listing, err := s.list(ctx, cmd.GalleryDir)
	if err != nil {
		return SyncResult{}, err
	}

	return s.reconcile(ctx, cmd, listing)
}

func (s *Service) list(ctx context.Context, galleryDir string) ([]string, error) {
	listing, err := s.lister.ListImages(ctx, galleryDir)
	if err != nil {
		return nil, fmt.Errorf("list gallery %s: %w", galleryDir, err)
	}

	return listing, nil
}

func (s *Service) reconcile(ctx context.Context, cmd SyncCommand, listing []string) (SyncResult, error) {
	logger := logging.NewComponentLogger(s.logger, "sync")

	found := true
	previous, err := cmd.Store.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrStoreNotFound) || cmd.RequireStore {
			return SyncResult{}, fmt.Errorf("load captions %s: %w", cmd.Store.Path(), err)
		}
		found = false
		previous = domain.WorkingList{}
	}

	if duplicates := previous.Duplicates(); duplicates > 0 {
		logger.Warn("caption store repeats filenames; keeping the first caption of each",
			slog.String("store", cmd.Store.Path()),
			slog.Int("duplicates", duplicates),
		)
	}

	records := domain.Reconcile(listing, previous)
	report := domain.Summarize(listing, previous)

	logger.Info("gallery reconciled",
		slog.String("gallery", cmd.GalleryDir),
		slog.Int("images", len(records)),
		slog.Int("added", len(report.Added)),
		slog.Int("dropped", len(report.Dropped)),
		slog.Bool("store_found", found),
	)
	for _, orphan := range report.Orphaned() {
		logger.Warn("dropping caption for missing image",
			slog.String("image", orphan.Filename),
			slog.String("caption", orphan.Caption),
		)
	}

	return SyncResult{
		Records:    records,
		Report:     report,
		StorePath:  cmd.Store.Path(),
		StoreFound: found,
	}, nil
}

// Run syncs, optionally runs an edit session, then saves the working list.
// The store stays locked from load to save. Nothing is saved when any step
// before the save fails.
func (s *Service) Run(ctx context.Context, cmd RunCommand) (result RunResult, err error) {
	if cmd.Edit && s.runner == nil {
		return RunResult{}, ErrNoSessionRunner
	}

	listing, err := s.list(ctx, cmd.GalleryDir)
	if err != nil {
		return RunResult{}, err
	}

	if s.locker != nil {
		unlock, lockErr := s.locker.Lock(ctx, cmd.Store.Path())
		if lockErr != nil {
			return RunResult{}, lockErr
		}
		defer func() {
			if unlockErr := unlock(); unlockErr != nil {
				err = errors.Join(err, unlockErr)
			}
		}()
	}

	synced, err := s.reconcile(ctx, SyncCommand{GalleryDir: cmd.GalleryDir, Store: cmd.Store}, listing)
	if err != nil {
		return RunResult{}, err
	}

	records := synced.Records
	if cmd.Edit {
		session := NewEditSession(records, cmd.GalleryDir, cmd.Viewer, s.launcher, s.logger)
		runErr := s.runEditSession(ctx, session)
		if runErr != nil {
			return RunResult{}, fmt.Errorf("edit session: %w", runErr)
		}
		records = session.Records()
	}

	if err := cmd.Store.Save(ctx, records); err != nil {
		return RunResult{}, fmt.Errorf("save captions to %s: %w", cmd.Store.Path(), err)
	}

	s.logger.Info("captions saved",
		slog.String("path", cmd.Store.Path()),
		slog.Int("records", len(records)),
		slog.Int("captioned", records.Captioned()),
	)

	synced.Records = records
	return RunResult{SyncResult: synced, OutputPath: cmd.Store.Path(), Edited: cmd.Edit}, nil
}

func (s *Service) runEditSession(ctx context.Context, session *EditSession) error {
	defer session.Close()

	if session.State() == StateExiting {
		s.logger.Info("nothing to edit: gallery has no images")
		return nil
	}

	if err := s.runner.Run(ctx, session); err != nil {
		return err
	}
	session.Quit()

	return nil
}
