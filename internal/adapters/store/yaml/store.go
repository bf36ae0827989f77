package yaml

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bnema/gallery-captioner/internal/adapters/store/atomicfile"
	"github.com/bnema/gallery-captioner/internal/domain"
	"github.com/bnema/gallery-captioner/internal/ports"
	"gopkg.in/yaml.v3"
)

const captionsFileMode = 0o644

type document struct {
	Captions []entry `yaml:"captions"`
}

type entry struct {
	Image   string `yaml:"image"`
	Caption string `yaml:"caption"`
}

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

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrStoreNotFound, s.path)
		}
		return nil, fmt.Errorf("read captions file: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrMalformedInput, s.path, err)
	}

	records := make(domain.WorkingList, 0, len(doc.Captions))
	for i, item := range doc.Captions {
		if item.Image == "" {
			return nil, fmt.Errorf("%w: %s: captions[%d]: image is required", domain.ErrMalformedInput, s.path, i)
		}
		records = append(records, domain.CaptionRecord{Filename: item.Image, Caption: item.Caption})
	}

	return records, nil
}

func (s *Store) Save(ctx context.Context, records domain.WorkingList) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc := document{Captions: make([]entry, 0, len(records))}
	for _, record := range records {
		doc.Captions = append(doc.Captions, entry{Image: record.Filename, Caption: record.Caption})
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", domain.ErrIOFailure, s.path, err)
	}

	if err := atomicfile.WriteFile(s.path, data, captionsFileMode); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrIOFailure, s.path, err)
	}

	return nil
}
