// Package fs provides file-based storage for lecture pages.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/lecturekit"
)

// BackupSuffix is appended to a file name when its previous content is kept.
const BackupSuffix = ".bak"

// Ensure Store implements lecturekit.Store at compile time.
var _ lecturekit.Store = (*Store)(nil)

// Store reads and writes lecture files on the local filesystem.
// Writes go to a temporary file that is renamed over the target, so a
// failed run never leaves a truncated page behind.
type Store struct {
	createDirs bool
	backup     bool
	perm       os.FileMode
}

// Option configures a Store.
type Option func(*Store)

// WithCreateDirs creates missing parent directories on write.
// By default a missing directory is an ENOTFOUND error.
func WithCreateDirs(enabled bool) Option {
	return func(s *Store) {
		s.createDirs = enabled
	}
}

// WithBackup copies a file to <path>.bak before it is overwritten.
func WithBackup(enabled bool) Option {
	return func(s *Store) {
		s.backup = enabled
	}
}

// NewStore creates a new Store.
func NewStore(opts ...Option) *Store {
	s := &Store{perm: 0644}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ReadDocument implements lecturekit.Store.
func (s *Store) ReadDocument(ctx context.Context, path string) (*lecturekit.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, lecturekit.Errorf(lecturekit.ENOTFOUND, "file %q not found", path)
	} else if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return &lecturekit.Document{Path: path, Content: string(data)}, nil
}

// WriteFile implements lecturekit.Store. Writing content identical to what
// is already on disk leaves the file untouched and reports Unchanged.
func (s *Store) WriteFile(ctx context.Context, path string, content string) (*lecturekit.WriteResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &lecturekit.WriteResult{
		Path:  path,
		Bytes: len(content),
		Hash:  ComputeHash(content),
	}

	dir := filepath.Dir(path)
	if s.createDirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	} else if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		return nil, lecturekit.Errorf(lecturekit.ENOTFOUND, "directory %q does not exist", dir)
	}

	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if ComputeHash(string(existing)) == result.Hash {
			result.Unchanged = true
			return result, nil
		}
		if s.backup {
			if err := os.WriteFile(path+BackupSuffix, existing, s.perm); err != nil {
				return nil, fmt.Errorf("back up %s: %w", path, err)
			}
		}
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), s.perm); err != nil {
		return nil, fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return nil, fmt.Errorf("rename %s: %w", tmp, err)
	}

	return result, nil
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
