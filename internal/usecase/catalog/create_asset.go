package catalog

import (
	"context"
	"fmt"

	"github.com/striming/videos-ms-go/internal/logger"
	"github.com/striming/videos-ms-go/internal/model"
	"github.com/striming/videos-ms-go/internal/port"
)

const defaultCategory = "general"

type assetCreatorSrv struct {
	repo    port.AssetRepository
	genUUID port.UUIDGen
}

// compile-time check: *assetCreatorSrv must satisfy port.AssetCreator
var _ port.AssetCreator = (*assetCreatorSrv)(nil)

func NewAssetCreator(repo port.AssetRepository, genUUID port.UUIDGen) port.AssetCreator {
	return &assetCreatorSrv{repo: repo, genUUID: genUUID}
}

// CreateAsset registers a new active catalog entry. Variants arrive later
// through the upload path.
func (s *assetCreatorSrv) CreateAsset(ctx context.Context, in port.CreateAssetInput) (*port.CreateAssetOutput, error) {
	category := in.Category
	if category == "" {
		category = defaultCategory
	}

	asset := &model.Asset{
		ID:           s.genUUID(),
		Title:        in.Title,
		Description:  in.Description,
		Category:     category,
		DurationSecs: in.DurationSecs,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, asset); err != nil {
		return nil, fmt.Errorf("create asset: %w", err)
	}

	logger.Infof(ctx, "created asset #%s (%q)", asset.ID, asset.Title)
	return &port.CreateAssetOutput{ID: asset.ID}, nil
}
