package catalog

import (
	"context"

	"github.com/striming/videos-ms-go/internal/logger"
	"github.com/striming/videos-ms-go/internal/model"
	"github.com/striming/videos-ms-go/internal/port"
	"github.com/striming/videos-ms-go/internal/uuid"
)

type assetGetterSrv struct {
	repo port.AssetRepository
}

// compile-time check: *assetGetterSrv must satisfy port.AssetGetter
var _ port.AssetGetter = (*assetGetterSrv)(nil)

func NewAssetGetter(repo port.AssetRepository) port.AssetGetter {
	return &assetGetterSrv{repo: repo}
}

// GetAsset returns the public detail view and bumps the view counter. The
// increment is a single atomic SQL update; it is not synchronized with any
// in-flight stream of the same asset. Storage keys stay out of the output.
func (s *assetGetterSrv) GetAsset(ctx context.Context, id uuid.UUID) (*port.GetAssetOutput, error) {
	asset, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !asset.IsActive {
		return nil, ErrAssetNotFound
	}

	if err := s.repo.IncrementViews(ctx, id); err != nil {
		// the detail view is still worth returning
		logger.Warnf(ctx, "could not increment views for asset #%s: %v", id, err)
	} else {
		asset.Views++
	}

	variants := make([]model.Variant, len(asset.Variants))
	copy(variants, asset.Variants)
	model.SortVariantsByQuality(variants)

	qualities := make([]port.AssetQualityOutput, 0, len(variants))
	for _, v := range variants {
		qualities = append(qualities, port.AssetQualityOutput{
			Quality:    v.Quality,
			Bitrate:    v.Bitrate,
			Resolution: v.Resolution,
		})
	}

	return &port.GetAssetOutput{
		ID:           asset.ID,
		Title:        asset.Title,
		Description:  asset.Description,
		Category:     asset.Category,
		DurationSecs: asset.DurationSecs,
		Views:        asset.Views,
		Qualities:    qualities,
		CreatedAt:    asset.CreatedAt,
	}, nil
}
