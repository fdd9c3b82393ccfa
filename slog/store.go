package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/lecturekit"
)

// Ensure LoggingStore implements lecturekit.Store.
var _ lecturekit.Store = (*LoggingStore)(nil)

// LoggingStore wraps a Store with logging of every read and write.
type LoggingStore struct {
	next   lecturekit.Store
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next lecturekit.Store, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// ReadDocument delegates to the wrapped store and logs the operation.
func (s *LoggingStore) ReadDocument(ctx context.Context, path string) (doc *lecturekit.Document, err error) {
	defer func(begin time.Time) {
		var size int
		if doc != nil {
			size = len(doc.Content)
		}
		s.logger.Info("read",
			"path", path,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadDocument(ctx, path)
}

// WriteFile delegates to the wrapped store and logs the operation.
func (s *LoggingStore) WriteFile(ctx context.Context, path string, content string) (result *lecturekit.WriteResult, err error) {
	defer func(begin time.Time) {
		var unchanged bool
		if result != nil {
			unchanged = result.Unchanged
		}
		s.logger.Info("write",
			"path", path,
			"bytes", len(content),
			"unchanged", unchanged,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WriteFile(ctx, path, content)
}
