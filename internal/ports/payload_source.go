package ports

import (
	"context"
	"io"
)

// PayloadSource provides the payload text to solve.
type PayloadSource interface {
	// Open returns a reader positioned at the start of the payload.
	// The caller must close it.
	Open(ctx context.Context) (io.ReadCloser, error)

	// Name identifies the source in logs ("stdin", a file path, ...).
	Name() string
}

// FileBacked is implemented by sources that read a file on disk.
// Only file-backed sources can be watched for changes.
type FileBacked interface {
	PayloadSource
	Path() string
}
