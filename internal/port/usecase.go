package port

import (
	"context"
	"io"
	"time"

	"github.com/striming/videos-ms-go/internal/model"
	"github.com/striming/videos-ms-go/internal/uuid"
)

type UUIDGen func() uuid.UUID

// ManifestGetter lists an asset's variants in fixed quality order, each with
// the URL a client uses to start playback.
type ManifestGetter interface {
	GetManifest(ctx context.Context, id uuid.UUID) (*GetManifestOutput, error)
}
type ManifestQualityOutput struct {
	Quality    model.Quality `json:"quality"`
	Bitrate    int64         `json:"bitrate"`
	Resolution string        `json:"resolution"`
	URL        string        `json:"url"`
}
type GetManifestOutput struct {
	AssetID      uuid.UUID               `json:"asset_id"`
	Title        string                  `json:"title"`
	DurationSecs int                     `json:"duration"`
	Qualities    []ManifestQualityOutput `json:"qualities"`
}

// VariantStreamer plans the delivery of one variant's bytes, honouring HTTP
// range semantics. The returned plan carries a lazy body the caller must
// close after copying it to the sink.
type VariantStreamer interface {
	StreamVariant(ctx context.Context, in StreamVariantInput) (*StreamPlan, error)
}
type StreamVariantInput struct {
	Ref         string
	RangeHeader string
	Credential  string
}
type StreamPlan struct {
	Status        int // 200 or 206
	ContentType   string
	ContentLength int64
	ContentRange  string // empty on full responses
	TotalSize     int64
	Body          io.ReadCloser
}

// StreamInfoGetter is the privileged variant listing: it exposes raw storage
// keys, so callers must gate it behind the access guard.
type StreamInfoGetter interface {
	GetStreamInfo(ctx context.Context, id uuid.UUID) (*GetStreamInfoOutput, error)
}
type StreamInfoQualityOutput struct {
	Quality    model.Quality `json:"quality"`
	Bitrate    int64         `json:"bitrate"`
	Resolution string        `json:"resolution"`
	StorageKey string        `json:"storage_key"`
	URL        string        `json:"url"`
}
type GetStreamInfoOutput struct {
	AssetID      uuid.UUID                 `json:"asset_id"`
	Title        string                    `json:"title"`
	DurationSecs int                       `json:"duration"`
	Qualities    []StreamInfoQualityOutput `json:"qualities"`
}

// AssetGetter returns the public detail view of one asset and bumps its view
// counter. Storage keys are never part of the output.
type AssetGetter interface {
	GetAsset(ctx context.Context, id uuid.UUID) (*GetAssetOutput, error)
}
type AssetQualityOutput struct {
	Quality    model.Quality `json:"quality"`
	Bitrate    int64         `json:"bitrate"`
	Resolution string        `json:"resolution"`
}
type GetAssetOutput struct {
	ID           uuid.UUID            `json:"id"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Category     string               `json:"category"`
	DurationSecs int                  `json:"duration_secs"`
	Views        int64                `json:"views"`
	Qualities    []AssetQualityOutput `json:"qualities"`
	CreatedAt    time.Time            `json:"created_at"`
}

// AssetLister searches the public catalog.
type AssetLister interface {
	ListAssets(ctx context.Context, in ListAssetsInput) (*ListAssetsOutput, error)
}
type ListAssetsInput struct {
	Search   string
	Category string
	Page     int
	Limit    int
}
type AssetSummaryOutput struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	DurationSecs int       `json:"duration_secs"`
	Views        int64     `json:"views"`
	CreatedAt    time.Time `json:"created_at"`
}
type PaginationOutput struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}
type ListAssetsOutput struct {
	Assets     []AssetSummaryOutput `json:"assets"`
	Pagination PaginationOutput     `json:"pagination"`
}

// TrendingLister returns the most-viewed active assets.
type TrendingLister interface {
	ListTrending(ctx context.Context, limit int) (*ListTrendingOutput, error)
}
type ListTrendingOutput struct {
	Assets []AssetSummaryOutput `json:"assets"`
}

// CategoryLister returns the distinct categories carried by active assets.
type CategoryLister interface {
	ListCategories(ctx context.Context) (*ListCategoriesOutput, error)
}
type ListCategoriesOutput struct {
	Categories []string `json:"categories"`
}

// AssetCreator registers a new catalog entry without any variant yet.
type AssetCreator interface {
	CreateAsset(ctx context.Context, in CreateAssetInput) (*CreateAssetOutput, error)
}
type CreateAssetInput struct {
	Title        string `json:"title" validate:"required,max=120"`
	Description  string `json:"description" validate:"max=2000"`
	Category     string `json:"category" validate:"max=100"`
	DurationSecs int    `json:"duration_secs" validate:"gte=0"`
}
type CreateAssetOutput struct {
	ID uuid.UUID `json:"id"`
}

// VariantUploader stores an already-encoded rendition under a fresh storage
// key and registers it on the asset.
type VariantUploader interface {
	UploadVariant(ctx context.Context, in UploadVariantInput) (*UploadVariantOutput, error)
}
type UploadVariantInput struct {
	AssetID     uuid.UUID
	Quality     string `validate:"required,quality"`
	Resolution  string
	Bitrate     int64  `validate:"gte=0"`
	ContentType string `validate:"required"`
	SizeBytes   int64  `validate:"gt=0"`
	Body        io.Reader
}
type UploadVariantOutput struct {
	AssetID    uuid.UUID     `json:"asset_id"`
	Quality    model.Quality `json:"quality"`
	StorageKey string        `json:"storage_key"`
}

// VariantProber finalises ingest: it stats the stored blob and records its
// size and derived bitrate on the variant.
type VariantProber interface {
	ProbeVariant(ctx context.Context, storageKey string) error
}
