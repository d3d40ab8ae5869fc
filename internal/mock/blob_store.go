package mock

import (
	"bytes"
	"context"
	"io"

	"github.com/striming/videos-ms-go/internal/port"
)

// BlobStore implements port.BlobStore for tests. Blob holds the full binary;
// Open and OpenRange slice it the way the real store would.
type BlobStore struct {
	// stored values
	Blob        []byte
	ContentType string

	// captured inputs
	GotKey         string
	GotStart       int64
	GotEnd         int64
	GotSize        int64
	GotContentType string
	Saved          []byte

	// errors
	InitBucketErr error
	StatErr       error
	OpenErr       error
	SaveErr       error
	RemoveErr     error

	// call flags
	InitBucketCalled bool
	StatCalled       bool
	OpenCalled       bool
	OpenRangeCalled  bool
	SaveCalled       bool
	RemoveCalled     bool
}

// compile-time check: *BlobStore must satisfy port.BlobStore
var _ port.BlobStore = (*BlobStore)(nil)

func (m *BlobStore) InitBucket(ctx context.Context) error {
	m.InitBucketCalled = true
	return m.InitBucketErr
}

func (m *BlobStore) Stat(ctx context.Context, key string) (port.BlobInfo, error) {
	m.StatCalled = true
	m.GotKey = key
	if m.StatErr != nil {
		return port.BlobInfo{}, m.StatErr
	}
	return port.BlobInfo{
		SizeBytes:   int64(len(m.Blob)),
		ContentType: m.ContentType,
	}, nil
}

func (m *BlobStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	m.OpenCalled = true
	m.GotKey = key
	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	return io.NopCloser(bytes.NewReader(m.Blob)), nil
}

func (m *BlobStore) OpenRange(ctx context.Context, key string, start, end int64) (io.ReadCloser, error) {
	m.OpenRangeCalled = true
	m.GotKey = key
	m.GotStart = start
	m.GotEnd = end
	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	return io.NopCloser(bytes.NewReader(m.Blob[start : end+1])), nil
}

func (m *BlobStore) Save(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	m.SaveCalled = true
	m.GotKey = key
	m.GotSize = size
	m.GotContentType = contentType
	if m.SaveErr != nil {
		return m.SaveErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.Saved = data
	return nil
}

func (m *BlobStore) Remove(ctx context.Context, key string) error {
	m.RemoveCalled = true
	m.GotKey = key
	return m.RemoveErr
}
