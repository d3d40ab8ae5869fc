package mock

import (
	"context"
	"time"

	"github.com/striming/videos-ms-go/internal/port"
	"github.com/striming/videos-ms-go/internal/uuid"
)

// Cache implements port.Cache for tests.
type Cache struct {
	// stored values
	ManifestOut []byte
	EtagOut     string

	// captured inputs
	GotID       uuid.UUID
	GotManifest []byte
	GotEtag     string
	GotTTL      time.Duration

	// errors
	GetErr    error
	DeleteErr error

	// call flags
	GetManifestCalled    bool
	GetEtagCalled        bool
	SetManifestCalled    bool
	SetEtagCalled        bool
	DeleteManifestCalled bool
	DeleteEtagCalled     bool
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func (m *Cache) GetManifest(ctx context.Context, id uuid.UUID) ([]byte, error) {
	m.GetManifestCalled = true
	m.GotID = id
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.ManifestOut, nil
}

func (m *Cache) GetEtagManifest(ctx context.Context, id uuid.UUID) (string, error) {
	m.GetEtagCalled = true
	if m.GetErr != nil {
		return "", m.GetErr
	}
	return m.EtagOut, nil
}

func (m *Cache) SetManifest(ctx context.Context, id uuid.UUID, data []byte, ttl time.Duration) {
	m.SetManifestCalled = true
	m.GotID = id
	m.GotManifest = data
	m.GotTTL = ttl
}

func (m *Cache) SetEtagManifest(ctx context.Context, id uuid.UUID, etag string, ttl time.Duration) {
	m.SetEtagCalled = true
	m.GotEtag = etag
	m.GotTTL = ttl
}

func (m *Cache) DeleteManifest(ctx context.Context, id uuid.UUID) error {
	m.DeleteManifestCalled = true
	m.GotID = id
	return m.DeleteErr
}

func (m *Cache) DeleteEtagManifest(ctx context.Context, id uuid.UUID) error {
	m.DeleteEtagCalled = true
	return m.DeleteErr
}
