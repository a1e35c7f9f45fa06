package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	return s
}

func TestSaveAndOpenRoundtrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	path, err := s.Save(ctx, "mfr-1/prod-1/doc.pdf", strings.NewReader("content"), 7, "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "mfr-1/prod-1/doc.pdf", path)

	r, err := s.Open(ctx, path)
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))

	size, err := s.Size(ctx, path)
	require.NoError(t, err)
	assert.EqualValues(t, 7, size)
}

func TestSaveCollisionPicksNewName(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	first, err := s.Save(ctx, "mfr-1/prod-1/doc.pdf", strings.NewReader("one"), 3, "application/pdf")
	require.NoError(t, err)

	second, err := s.Save(ctx, "mfr-1/prod-1/doc.pdf", strings.NewReader("two"), 3, "application/pdf")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, "mfr-1/prod-1/doc-1.pdf", second)

	// The original file survives untouched.
	r, err := s.Open(ctx, first)
	require.NoError(t, err)
	defer r.Close()
	data, _ := io.ReadAll(r)
	assert.Equal(t, "one", string(data))
}

func TestPathTraversalRejected(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.Save(ctx, "../escape.txt", strings.NewReader("x"), 1, "text/plain")
	assert.ErrorIs(t, err, ErrInvalidPath)

	_, err = s.Open(ctx, "mfr-1/../../etc/passwd")
	assert.ErrorIs(t, err, ErrInvalidPath)

	err = s.Delete(ctx, "../../outside")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestDeleteAbsentIsSuccess(t *testing.T) {
	s := newTestStorage(t)
	assert.NoError(t, s.Delete(context.Background(), "mfr-1/prod-1/never-existed.pdf"))
}

func TestDeleteThenExists(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	path, err := s.Save(ctx, "mfr-1/prod-1/doc.pdf", strings.NewReader("x"), 1, "application/pdf")
	require.NoError(t, err)

	exists, err := s.Exists(ctx, path)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.Delete(ctx, path))

	exists, err = s.Exists(ctx, path)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUniqueFilenameKeepsExtension(t *testing.T) {
	name := UniqueFilename("report.pdf")
	assert.Equal(t, ".pdf", filepath.Ext(name))
	assert.True(t, strings.HasPrefix(name, "report-"))

	other := UniqueFilename("report.pdf")
	assert.NotEqual(t, name, other)
}
