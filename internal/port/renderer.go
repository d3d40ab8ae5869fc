package port

import (
	"context"

	"github.com/striming/videos-ms-go/internal/uuid"
)

// HTTPRenderer mediates between HTTP handlers and the manifest use case.
// It provides caching capabilities and returns both the JSON representation of
// the result as well as an ETag value derived from it.
type HTTPRenderer interface {
	// RenderGetManifest returns the cached JSON result and its ETag if available
	// or executes the underlying use case and caches the output otherwise.
	RenderGetManifest(ctx context.Context, getter ManifestGetter, id uuid.UUID) ([]byte, string, error)
}
