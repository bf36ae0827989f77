package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/bnema/gallery-captioner/internal/adapters/store/atomicfile"
	"github.com/bnema/gallery-captioner/internal/domain"
	"github.com/bnema/gallery-captioner/internal/ports"
	_ "modernc.org/sqlite"
)

const (
	driverName = "sqlite"
	dbFileMode = 0o644
)

const createTableSQL = `
CREATE TABLE captions (
	position INTEGER PRIMARY KEY,
	image    TEXT NOT NULL UNIQUE,
	caption  TEXT NOT NULL DEFAULT ''
)`

// Store keeps captions in a single-file SQLite database. Saves build a fresh
// database next to the target and rename it into place.
type Store struct {
	path string
}

var _ ports.CaptionStore = (*Store)(nil)

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Load(ctx context.Context) (domain.WorkingList, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Opening a missing file would create it.
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrStoreNotFound, s.path)
		}
		return nil, fmt.Errorf("stat captions database: %w", err)
	}

	db, err := sql.Open(driverName, s.path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open captions database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT image, caption FROM captions ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("%w: query %s: %v", domain.ErrMalformedInput, s.path, err)
	}
	defer rows.Close()

	records := domain.WorkingList{}
	for rows.Next() {
		var image string
		var caption sql.NullString
		if err := rows.Scan(&image, &caption); err != nil {
			return nil, fmt.Errorf("%w: scan %s: %v", domain.ErrMalformedInput, s.path, err)
		}
		if image == "" {
			return nil, fmt.Errorf("%w: %s: row %d: image is empty", domain.ErrMalformedInput, s.path, len(records)+1)
		}
		records = append(records, domain.CaptionRecord{Filename: image, Caption: caption.String})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrMalformedInput, s.path, err)
	}

	return records, nil
}

func (s *Store) Save(ctx context.Context, records domain.WorkingList) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := atomicfile.Replace(s.path, dbFileMode, func(tempPath string) error {
		return writeDatabase(ctx, tempPath, records)
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrIOFailure, s.path, err)
	}

	return nil
}

func writeDatabase(ctx context.Context, path string, records domain.WorkingList) (err error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return fmt.Errorf("open temp database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close temp database: %w", closeErr)
		}
	}()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("create captions table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO captions (position, image, caption) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, record := range records {
		if _, err = stmt.ExecContext(ctx, i, record.Filename, record.Caption); err != nil {
			return fmt.Errorf("insert %s: %w", record.Filename, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit captions: %w", err)
	}

	return nil
}
