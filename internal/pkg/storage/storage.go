package storage

import (
	"context"
	"errors"
	"io"
)

var (
	ErrNotFound    = errors.New("file not found")
	ErrInvalidPath = errors.New("invalid file path")
)

// FileStorage stores generated report files.
type FileStorage interface {
	// Upload writes a file and returns its cleaned key
	Upload(ctx context.Context, file io.Reader, path string) (string, error)

	Download(ctx context.Context, path string) (io.ReadCloser, error)

	Exists(ctx context.Context, path string) (bool, error)

	// URL returns the public link for a stored key
	URL(path string) string
}
