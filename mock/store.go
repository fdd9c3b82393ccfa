package mock

import (
	"context"

	"github.com/fwojciec/lecturekit"
)

var _ lecturekit.Store = (*Store)(nil)

// Store is a mock implementation of lecturekit.Store.
type Store struct {
	ReadDocumentFn func(ctx context.Context, path string) (*lecturekit.Document, error)
	WriteFileFn    func(ctx context.Context, path string, content string) (*lecturekit.WriteResult, error)
}

func (s *Store) ReadDocument(ctx context.Context, path string) (*lecturekit.Document, error) {
	return s.ReadDocumentFn(ctx, path)
}

func (s *Store) WriteFile(ctx context.Context, path string, content string) (*lecturekit.WriteResult, error) {
	return s.WriteFileFn(ctx, path, content)
}
