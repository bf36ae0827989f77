package store

import (
	"path/filepath"
	"testing"

	csvstore "github.com/bnema/gallery-captioner/internal/adapters/store/csv"
	sqlitestore "github.com/bnema/gallery-captioner/internal/adapters/store/sqlite"
	"github.com/bnema/gallery-captioner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    Format
		wantErr bool
	}{
		{raw: "", want: FormatCSV},
		{raw: "csv", want: FormatCSV},
		{raw: " TOML ", want: FormatTOML},
		{raw: "yaml", want: FormatYAML},
		{raw: "sqlite", want: FormatSQLite},
		{raw: "xlsx", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.raw, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFormat(tc.raw)
			if tc.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidArgument)
				assert.ErrorContains(t, err, "csv, toml, yaml, sqlite")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolvePath(t *testing.T) {
	t.Parallel()

	gallery := filepath.Join("/", "photos")

	assert.Equal(t, filepath.Join(gallery, "captions.csv"), ResolvePath(gallery, "", FormatCSV))
	assert.Equal(t, filepath.Join(gallery, "captions.db"), ResolvePath(gallery, "  ", FormatSQLite))
	assert.Equal(t, filepath.Join(gallery, "alt.csv"), ResolvePath(gallery, "alt.csv", FormatCSV))

	absolute := filepath.Join("/", "tmp", "out.toml")
	assert.Equal(t, absolute, ResolvePath(gallery, absolute, FormatTOML))
}

func TestOpenReturnsFormatStore(t *testing.T) {
	t.Parallel()

	csv, err := Open(FormatCSV, "/g/captions.csv")
	require.NoError(t, err)
	assert.IsType(t, &csvstore.Store{}, csv)
	assert.Equal(t, "/g/captions.csv", csv.Path())

	db, err := Open(FormatSQLite, "/g/captions.db")
	require.NoError(t, err)
	assert.IsType(t, &sqlitestore.Store{}, db)

	_, err = Open(Format("xml"), "/g/captions.xml")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}
