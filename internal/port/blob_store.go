package port

import (
	"context"
	"io"
)

// BlobInfo represents metadata about a stored blob.
type BlobInfo struct {
	SizeBytes   int64
	ContentType string
}

// BlobStore defines key-addressed binary storage with ranged reads. Every
// Open/OpenRange call returns an independent handle; concurrent opens over
// the same key are safe and share nothing.
type BlobStore interface {
	InitBucket(ctx context.Context) error
	Stat(ctx context.Context, key string) (BlobInfo, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// OpenRange reads bytes [start, end] inclusive.
	OpenRange(ctx context.Context, key string, start, end int64) (io.ReadCloser, error)
	Save(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, key string) error
}
