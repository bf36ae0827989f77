package toml

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/gallery-captioner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "captions.toml"))
	records := domain.WorkingList{
		{Filename: "a.jpg", Caption: "sunset"},
		{Filename: "b.jpg"},
	}

	require.NoError(t, store.Save(context.Background(), records))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestStoreSaveWritesVersionedDocument(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "captions.toml")
	require.NoError(t, NewStore(path).Save(context.Background(), domain.WorkingList{{Filename: "a.jpg", Caption: "sunset"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "[[captions]]")
	assert.Contains(t, string(data), "a.jpg")
}

func TestStoreLoadMissingFileReportsNotFound(t *testing.T) {
	t.Parallel()

	_, err := NewStore(filepath.Join(t.TempDir(), "captions.toml")).Load(context.Background())
	require.ErrorIs(t, err, domain.ErrStoreNotFound)
}

func TestStoreLoadBackwardCompatibleWithoutVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "captions.toml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"[[captions]]",
		"image = \"a.jpg\"",
		"",
		"[[captions]]",
		"image = \"b.jpg\"",
		"caption = \"kept\"",
		"",
	}, "\n")), 0o644))

	got, err := NewStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.WorkingList{{Filename: "a.jpg"}, {Filename: "b.jpg", Caption: "kept"}}, got)
}

func TestStoreLoadRejectsMalformedDocuments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "newer version", content: "version = 9\n"},
		{name: "missing image", content: "version = 1\n[[captions]]\ncaption = \"x\"\n"},
		{name: "not toml", content: "captions = [\n"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "captions.toml")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))

			_, err := NewStore(path).Load(context.Background())
			require.ErrorIs(t, err, domain.ErrMalformedInput)
		})
	}
}
