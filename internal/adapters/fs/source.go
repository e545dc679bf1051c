package fs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/bft-labs/groupsum/internal/ports"
)

// StdinName is the input path that selects standard input.
const StdinName = "-"

// ErrSourceConsumed is returned when a single-shot source is opened twice.
var ErrSourceConsumed = errors.New("groupsum: input already consumed")

// FileSource implements ports.PayloadSource by opening a file on each call.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Open opens the file for reading.
func (s *FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

// Name returns the file path.
func (s *FileSource) Name() string { return s.path }

// Path returns the file path.
func (s *FileSource) Path() string { return s.path }

// ReaderSource implements ports.PayloadSource over a stream such as stdin.
// A stream can only be read once.
type ReaderSource struct {
	mu   sync.Mutex
	name string
	r    io.Reader
	used bool
}

// NewReaderSource creates a single-shot source named name.
func NewReaderSource(name string, r io.Reader) *ReaderSource {
	return &ReaderSource{name: name, r: r}
}

// Open returns the stream. A second call fails with ErrSourceConsumed.
func (s *ReaderSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.used {
		return nil, ErrSourceConsumed
	}
	s.used = true
	return io.NopCloser(s.r), nil
}

// Name returns the stream name.
func (s *ReaderSource) Name() string { return s.name }

// BytesSource implements ports.PayloadSource over an in-memory payload.
type BytesSource struct {
	name string
	data []byte
}

// NewBytesSource creates a re-readable source over data.
func NewBytesSource(name string, data []byte) *BytesSource {
	return &BytesSource{name: name, data: data}
}

// Open returns a fresh reader over the payload.
func (s *BytesSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(s.data)), nil
}

// Name returns the source name.
func (s *BytesSource) Name() string { return s.name }

// NewSource picks a source for an input path: empty or "-" reads stdin,
// anything else is a file.
func NewSource(path string, stdin io.Reader) ports.PayloadSource {
	if path == "" || path == StdinName {
		return NewReaderSource("stdin", stdin)
	}
	return NewFileSource(path)
}

var (
	_ ports.FileBacked    = (*FileSource)(nil)
	_ ports.PayloadSource = (*ReaderSource)(nil)
	_ ports.PayloadSource = (*BytesSource)(nil)
)
