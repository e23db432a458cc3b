package mirror

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentsURL(t *testing.T) {
	c := NewClient("http://mirror.example/debian/dists/stable/main/", time.Minute, 0)
	assert.Equal(t, "http://mirror.example/debian/dists/stable/main/Contents-amd64.gz", c.ContentsURL("amd64"))

	// Same result without the trailing slash.
	c = NewClient("http://mirror.example/debian/dists/stable/main", time.Minute, 0)
	assert.Equal(t, "http://mirror.example/debian/dists/stable/main/Contents-amd64.gz", c.ContentsURL("amd64"))
}

func TestDownloadWritesBlob(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Contents-amd64.gz", r.URL.Path)
		w.Write([]byte("compressed-bytes"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "downloads", "Contents-amd64.gz")
	c := NewClient(srv.URL, time.Minute, 0)
	require.NoError(t, c.Download(context.Background(), "amd64", dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "compressed-bytes", string(data))

	// No temp file left behind.
	_, err = os.Stat(dest + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestDownloadRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "Contents-arm64.gz")
	c := NewClient(srv.URL, time.Minute, 3)
	require.NoError(t, c.Download(context.Background(), "arm64", dest))
	assert.Equal(t, int32(2), calls.Load())
}

func TestDownloadDoesNotRetryNotFound(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "Contents-sparc.gz")
	c := NewClient(srv.URL, time.Minute, 3)
	err := c.Download(context.Background(), "sparc", dest)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, http.StatusNotFound, netErr.Status)

	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDownloadUnreachableMirror(t *testing.T) {
	// Reserved TEST-NET-1 address; connection fails fast.
	c := NewClient("http://192.0.2.1:9", 100*time.Millisecond, 0)
	err := c.Download(context.Background(), "amd64", filepath.Join(t.TempDir(), "x.gz"))
	require.Error(t, err)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Zero(t, netErr.Status)
}
