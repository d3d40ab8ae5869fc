package catalog

import (
	"context"

	"github.com/striming/videos-ms-go/internal/model"
	"github.com/striming/videos-ms-go/internal/port"
	"github.com/striming/videos-ms-go/internal/uuid"
)

type streamInfoGetterSrv struct {
	repo port.AssetRepository
}

// compile-time check: *streamInfoGetterSrv must satisfy port.StreamInfoGetter
var _ port.StreamInfoGetter = (*streamInfoGetterSrv)(nil)

func NewStreamInfoGetter(repo port.AssetRepository) port.StreamInfoGetter {
	return &streamInfoGetterSrv{repo: repo}
}

// GetStreamInfo is the privileged twin of GetManifest: same ordering, but the
// output includes raw storage keys. Only authenticated callers may reach it.
func (s *streamInfoGetterSrv) GetStreamInfo(ctx context.Context, id uuid.UUID) (*port.GetStreamInfoOutput, error) {
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

	qualities := make([]port.StreamInfoQualityOutput, 0, len(variants))
	for _, v := range variants {
		qualities = append(qualities, port.StreamInfoQualityOutput{
			Quality:    v.Quality,
			Bitrate:    v.Bitrate,
			Resolution: v.Resolution,
			StorageKey: v.StorageKey,
			URL:        StreamBasePath + v.StorageKey,
		})
	}

	return &port.GetStreamInfoOutput{
		AssetID:      asset.ID,
		Title:        asset.Title,
		DurationSecs: asset.DurationSecs,
		Qualities:    qualities,
	}, nil
}
