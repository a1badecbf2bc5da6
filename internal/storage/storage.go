package storage

import (
	"context"
	"io"
)

// ObjectStore holds uploaded project artifacts.
type ObjectStore interface {
	// Put stores body under key and returns the URL clients fetch it from.
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	Remove(ctx context.Context, key string) error
}
