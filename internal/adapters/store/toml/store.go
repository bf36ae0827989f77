package toml

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bnema/gallery-captioner/internal/adapters/store/atomicfile"
	"github.com/bnema/gallery-captioner/internal/domain"
	"github.com/bnema/gallery-captioner/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const captionsFileMode = 0o644

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

	file, err := s.readSchema()
	if err != nil {
		return nil, err
	}

	records, err := fromSchema(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}

	return records, nil
}

func (s *Store) Save(ctx context.Context, records domain.WorkingList) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file := toSchema(records)
	file.applyDefaults()

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", domain.ErrIOFailure, s.path, err)
	}

	if err := atomicfile.WriteFile(s.path, data, captionsFileMode); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrIOFailure, s.path, err)
	}

	return nil
}

func (s *Store) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, fmt.Errorf("%w: %s", domain.ErrStoreNotFound, s.path)
		}
		return fileSchema{}, fmt.Errorf("read captions file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("%w: decode %s: %v", domain.ErrMalformedInput, s.path, err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}
