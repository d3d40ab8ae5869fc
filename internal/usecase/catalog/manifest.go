package catalog

import (
	"context"

	"github.com/striming/videos-ms-go/internal/model"
	"github.com/striming/videos-ms-go/internal/port"
	"github.com/striming/videos-ms-go/internal/uuid"
)

// StreamBasePath is the route prefix manifest URLs point at.
const StreamBasePath = "/stream/"

type manifestGetterSrv struct {
	repo port.AssetRepository
}

// compile-time check: *manifestGetterSrv must satisfy port.ManifestGetter
var _ port.ManifestGetter = (*manifestGetterSrv)(nil)

func NewManifestGetter(repo port.AssetRepository) port.ManifestGetter {
	return &manifestGetterSrv{repo: repo}
}

// GetManifest lists the asset's variants sorted by fixed quality order. Each
// entry carries the playback URL the range streamer serves; the raw storage
// key only ever travels embedded in that URL, behind the auth gate. No side
// effects, no authorization — callers apply the access guard first.
func (s *manifestGetterSrv) GetManifest(ctx context.Context, id uuid.UUID) (*port.GetManifestOutput, error) {
	asset, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !asset.IsActive {
		return nil, ErrAssetNotFound
	}

	variants := make([]model.Variant, len(asset.Variants))
	copy(variants, asset.Variants)
	model.SortVariantsByQuality(variants)

	qualities := make([]port.ManifestQualityOutput, 0, len(variants))
	for _, v := range variants {
		qualities = append(qualities, port.ManifestQualityOutput{
			Quality:    v.Quality,
			Bitrate:    v.Bitrate,
			Resolution: v.Resolution,
			URL:        StreamBasePath + v.StorageKey,
		})
	}

	return &port.GetManifestOutput{
		AssetID:      asset.ID,
		Title:        asset.Title,
		DurationSecs: asset.DurationSecs,
		Qualities:    qualities,
	}, nil
}
