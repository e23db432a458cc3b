// Package gzutil turns gzip-compressed blobs back into text streams.
package gzutil

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

type fileReader struct {
	*gzip.Reader
	file io.Closer
}

func (r *fileReader) Close() error {
	if err := r.Reader.Close(); err != nil {
		r.file.Close()
		return err
	}
	return r.file.Close()
}

// Open returns a reader yielding the decompressed contents of the gzip file
// at path. Closing the reader closes the underlying file.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to open gzip stream in %s: %w", path, err)
	}

	return &fileReader{Reader: zr, file: f}, nil
}

// ReadFile decompresses the gzip file at path into a string.
func ReadFile(path string) (string, error) {
	r, err := Open(path)
	if err != nil {
		return "", err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to decompress %s: %w", path, err)
	}
	return string(data), nil
}
