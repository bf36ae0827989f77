package toml

import (
	"fmt"

	"github.com/bnema/gallery-captioner/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Captions []captionSchema `toml:"captions"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("%w: unsupported captions schema version %d (current %d)", domain.ErrMalformedInput, s.Version, currentSchemaVersion)
	}

	return nil
}

type captionSchema struct {
	Image   string `toml:"image"`
	Caption string `toml:"caption"`
}

func toSchema(records domain.WorkingList) fileSchema {
	file := fileSchema{Version: currentSchemaVersion, Captions: make([]captionSchema, 0, len(records))}
	for _, record := range records {
		file.Captions = append(file.Captions, captionSchema{Image: record.Filename, Caption: record.Caption})
	}

	return file
}

func fromSchema(file fileSchema) (domain.WorkingList, error) {
	records := make(domain.WorkingList, 0, len(file.Captions))
	for i, entry := range file.Captions {
		if entry.Image == "" {
			return nil, fmt.Errorf("%w: captions[%d]: image is required", domain.ErrMalformedInput, i)
		}
		records = append(records, domain.CaptionRecord{Filename: entry.Image, Caption: entry.Caption})
	}

	return records, nil
}
