package gzutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helper to create a gzip file at path with the given content
func writeGz(t *testing.T, path, content string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := gzip.NewWriter(f)
	_, err = io.WriteString(zw, content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
}

func TestOpenDecompresses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.gz")
	writeGz(t, path, "bin/ls   coreutils\n")

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "bin/ls   coreutils\n", string(data))
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.gz")
	writeGz(t, path, "hello")

	text, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.gz"))
	assert.Error(t, err)
}

func TestOpenNotGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.gz")
	require.NoError(t, os.WriteFile(path, []byte("not gzip data"), 0o644))

	_, err := Open(path)
	assert.Error(t, err)
}
