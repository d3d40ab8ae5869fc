package port

import (
	"context"

	"github.com/striming/videos-ms-go/internal/model"
	"github.com/striming/videos-ms-go/internal/uuid"
)

// ListAssetsFilter narrows and paginates catalog listings. SortByViews
// orders by the view counter instead of recency.
type ListAssetsFilter struct {
	Search      string
	Category    string
	Page        int
	Limit       int
	SortByViews bool
}

// AssetRepository defines persistence operations for the video catalog.
// GetByStorageKey is the reverse lookup a stream request needs: requests
// arrive keyed by storage reference, not asset id.
type AssetRepository interface {
	Create(ctx context.Context, asset *model.Asset) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Asset, error)
	GetByStorageKey(ctx context.Context, storageKey string) (*model.Asset, error)
	AddVariant(ctx context.Context, assetID uuid.UUID, v model.Variant) error
	UpdateVariant(ctx context.Context, assetID uuid.UUID, v model.Variant) error
	IncrementViews(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ListAssetsFilter) ([]model.Asset, int, error)
	Categories(ctx context.Context) ([]string, error)
}
