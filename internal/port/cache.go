package port

import (
	"context"
	"time"

	"github.com/striming/videos-ms-go/internal/uuid"
)

// Cache provides caching capabilities for manifest retrieval.
type Cache interface {
	GetManifest(ctx context.Context, id uuid.UUID) ([]byte, error)
	GetEtagManifest(ctx context.Context, id uuid.UUID) (string, error)
	SetManifest(ctx context.Context, id uuid.UUID, data []byte, ttl time.Duration)
	SetEtagManifest(ctx context.Context, id uuid.UUID, etag string, ttl time.Duration)
	DeleteManifest(ctx context.Context, id uuid.UUID) error
	DeleteEtagManifest(ctx context.Context, id uuid.UUID) error
}
