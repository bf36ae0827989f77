package csv

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bnema/gallery-captioner/internal/adapters/store/atomicfile"
	"github.com/bnema/gallery-captioner/internal/domain"
	"github.com/bnema/gallery-captioner/internal/ports"
)

const (
	fileMode      = 0o644
	fieldsPerRow  = 2
	imageHeader   = "Image"
	captionHeader = "Caption"
)

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

	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrStoreNotFound, s.path)
		}
		return nil, fmt.Errorf("open captions file: %w", err)
	}
	defer file.Close()

	records, err := decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}

	return records, nil
}

func (s *Store) Save(ctx context.Context, records domain.WorkingList) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encode(records)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", domain.ErrIOFailure, s.path, err)
	}

	if err := atomicfile.WriteFile(s.path, data, fileMode); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrIOFailure, s.path, err)
	}

	return nil
}

// decode expects a two-column header row followed by filename,caption rows.
func decode(r io.Reader) (domain.WorkingList, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return domain.WorkingList{}, nil
		}
		return nil, malformed(err)
	}
	if len(header) != fieldsPerRow {
		return nil, fmt.Errorf("%w: header has %d fields, want %d", domain.ErrMalformedInput, len(header), fieldsPerRow)
	}

	records := domain.WorkingList{}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, malformed(err)
		}

		line, _ := reader.FieldPos(0)
		if len(row) != fieldsPerRow {
			return nil, fmt.Errorf("%w: line %d: got %d fields, want %d", domain.ErrMalformedInput, line, len(row), fieldsPerRow)
		}
		if row[0] == "" {
			return nil, fmt.Errorf("%w: line %d: image filename is empty", domain.ErrMalformedInput, line)
		}

		records = append(records, domain.CaptionRecord{Filename: row[0], Caption: row[1]})
	}

	return records, nil
}

func encode(records domain.WorkingList) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{imageHeader, captionHeader}); err != nil {
		return nil, err
	}
	for _, record := range records {
		if err := writer.Write([]string{record.Filename, record.Caption}); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func malformed(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Errorf("%w: line %d: %v", domain.ErrMalformedInput, parseErr.Line, parseErr.Err)
	}

	return fmt.Errorf("%w: %v", domain.ErrMalformedInput, err)
}
