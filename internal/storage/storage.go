// Package storage holds document contents in an S3-compatible object store. Keys are opaque
// to the store; the service layer decides the layout.
package storage

import (
	"context"
	"io"
	"time"
)

// PutObjectOptions describe an upload. Size -1 means unknown and makes the client buffer
// multipart chunks.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo describes stored content.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage streams document contents in and out of the store. Implementations never spool
// to local disk.
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get returns ErrNotExist when nothing is stored under key. The caller closes the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	Delete(ctx context.Context, key string) error
}
