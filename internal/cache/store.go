// Package cache keeps downloaded Contents blobs on disk, one per
// architecture, so repeated runs skip the mirror entirely.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	blobPrefix = "Contents-"
	blobSuffix = ".gz"
)

// Store manages the flat per-architecture download cache
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the cache directory path
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the cache location of the blob for the given architecture
func (s *Store) Path(architecture string) string {
	return filepath.Join(s.dir, blobPrefix+architecture+blobSuffix)
}

// Has reports whether a blob for the given architecture is cached
func (s *Store) Has(architecture string) bool {
	info, err := os.Stat(s.Path(architecture))
	return err == nil && info.Mode().IsRegular()
}

// EnsureDir creates the cache directory if it doesn't exist
func (s *Store) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	return nil
}

// Entry describes one cached blob
type Entry struct {
	Architecture string
	Size         int64
	Modified     time.Time
}

// List returns all cached blobs, sorted by architecture
func (s *Store) List() ([]Entry, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("failed to read cache directory: %w", err)
	}

	var entries []Entry
	for _, de := range dirEntries {
		name := de.Name()
		if de.IsDir() || !strings.HasPrefix(name, blobPrefix) || !strings.HasSuffix(name, blobSuffix) {
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			Architecture: strings.TrimSuffix(strings.TrimPrefix(name, blobPrefix), blobSuffix),
			Size:         info.Size(),
			Modified:     info.ModTime(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Architecture < entries[j].Architecture
	})
	return entries, nil
}

// Remove deletes the cached blob for the given architecture, if present
func (s *Store) Remove(architecture string) error {
	if err := os.Remove(s.Path(architecture)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove cached blob: %w", err)
	}
	return nil
}

// Clear removes every cached blob and returns how many were deleted
func (s *Store) Clear() (int, error) {
	entries, err := s.List()
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, entry := range entries {
		if err := s.Remove(entry.Architecture); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
