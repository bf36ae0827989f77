// Package store selects the caption store implementation for an output type.
package store

import (
	"fmt"
	"path/filepath"
	"strings"

	csvstore "github.com/bnema/gallery-captioner/internal/adapters/store/csv"
	sqlitestore "github.com/bnema/gallery-captioner/internal/adapters/store/sqlite"
	tomlstore "github.com/bnema/gallery-captioner/internal/adapters/store/toml"
	yamlstore "github.com/bnema/gallery-captioner/internal/adapters/store/yaml"
	"github.com/bnema/gallery-captioner/internal/domain"
	"github.com/bnema/gallery-captioner/internal/ports"
)

type Format string

const (
	FormatCSV    Format = "csv"
	FormatTOML   Format = "toml"
	FormatYAML   Format = "yaml"
	FormatSQLite Format = "sqlite"

	defaultBaseName = "captions"
)

var formats = []Format{FormatCSV, FormatTOML, FormatYAML, FormatSQLite}

func Formats() []string {
	names := make([]string, 0, len(formats))
	for _, format := range formats {
		names = append(names, string(format))
	}

	return names
}

func ParseFormat(raw string) (Format, error) {
	normalized := Format(strings.ToLower(strings.TrimSpace(raw)))
	if normalized == "" {
		return FormatCSV, nil
	}

	for _, format := range formats {
		if format == normalized {
			return format, nil
		}
	}

	return "", fmt.Errorf("%w: unsupported output type %q (available: %s)", domain.ErrInvalidArgument, raw, strings.Join(Formats(), ", "))
}

func (f Format) Extension() string {
	switch f {
	case FormatSQLite:
		return "db"
	default:
		return string(f)
	}
}

func (f Format) DefaultFileName() string {
	return defaultBaseName + "." + f.Extension()
}

// ResolvePath places name inside galleryDir unless name is absolute. An empty
// name falls back to the format's default file name.
func ResolvePath(galleryDir string, name string, format Format) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = format.DefaultFileName()
	}
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}

	return filepath.Join(galleryDir, name)
}

func Open(format Format, path string) (ports.CaptionStore, error) {
	switch format {
	case FormatCSV:
		return csvstore.NewStore(path), nil
	case FormatTOML:
		return tomlstore.NewStore(path), nil
	case FormatYAML:
		return yamlstore.NewStore(path), nil
	case FormatSQLite:
		return sqlitestore.NewStore(path), nil
	default:
		return nil, fmt.Errorf("%w: unsupported output type %q", domain.ErrInvalidArgument, format)
	}
}
