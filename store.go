package lecturekit

import "context"

// WriteResult describes a completed write.
type WriteResult struct {
	Path      string
	Bytes     int
	Hash      string
	Unchanged bool
}

// Store reads and writes lecture files.
type Store interface {
	// ReadDocument reads the page at path.
	// Returns ENOTFOUND if the file does not exist.
	ReadDocument(ctx context.Context, path string) (*Document, error)

	// WriteFile replaces the file at path with content. The parent
	// directory must already exist unless the store is configured to
	// create it; otherwise ENOTFOUND is returned.
	WriteFile(ctx context.Context, path string, content string) (*WriteResult, error)
}
