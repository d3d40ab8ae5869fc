package catalog

import (
	"context"
	"fmt"

	"github.com/striming/videos-ms-go/internal/logger"
	"github.com/striming/videos-ms-go/internal/model"
	"github.com/striming/videos-ms-go/internal/port"
)

type variantUploaderSrv struct {
	repo       port.AssetRepository
	store      port.BlobStore
	cache      port.Cache
	dispatcher port.TaskDispatcher
	genUUID    port.UUIDGen
}

// compile-time check: *variantUploaderSrv must satisfy port.VariantUploader
var _ port.VariantUploader = (*variantUploaderSrv)(nil)

func NewVariantUploader(repo port.AssetRepository, store port.BlobStore, cache port.Cache, dispatcher port.TaskDispatcher, genUUID port.UUIDGen) port.VariantUploader {
	return &variantUploaderSrv{repo: repo, store: store, cache: cache, dispatcher: dispatcher, genUUID: genUUID}
}

// UploadVariant streams an already-encoded rendition into the blob store
// under a fresh key and registers it on the asset. Keys are never reused:
// re-ingesting a quality means a new key, not an overwrite. On success the
// cached manifest is invalidated and a probe task is enqueued to finalise
// size and bitrate.
func (s *variantUploaderSrv) UploadVariant(ctx context.Context, in port.UploadVariantInput) (*port.UploadVariantOutput, error) {
	quality, err := model.ParseQuality(in.Quality)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuality, in.Quality)
	}

	asset, err := s.repo.GetByID(ctx, in.AssetID)
	if err != nil {
		return nil, err
	}
	if asset.HasQuality(quality) {
		return nil, fmt.Errorf("%w: %s on asset #%s", ErrQualityExists, quality, asset.ID)
	}

	key := s.genUUID().String() + ".mp4"

	if err := s.store.Save(ctx, key, in.Body, in.SizeBytes, in.ContentType); err != nil {
		return nil, fmt.Errorf("save variant blob %q: %w", key, err)
	}

	variant := model.Variant{
		Quality:    quality,
		StorageKey: key,
		Bitrate:    in.Bitrate,
		Resolution: in.Resolution,
		SizeBytes:  in.SizeBytes,
	}
	if err := s.repo.AddVariant(ctx, asset.ID, variant); err != nil {
		// the blob is orphaned without its catalog row; best effort cleanup
		if rmErr := s.store.Remove(ctx, key); rmErr != nil {
			logger.Warnf(ctx, "could not remove orphaned blob %q: %v", key, rmErr)
		}
		return nil, fmt.Errorf("register variant %q: %w", key, err)
	}

	if err := s.cache.DeleteManifest(ctx, asset.ID); err != nil {
		logger.Warnf(ctx, "could not invalidate manifest cache for asset #%s: %v", asset.ID, err)
	}
	if err := s.cache.DeleteEtagManifest(ctx, asset.ID); err != nil {
		logger.Warnf(ctx, "could not invalidate manifest etag for asset #%s: %v", asset.ID, err)
	}

	if err := s.dispatcher.EnqueueProbeVariant(ctx, key); err != nil {
		logger.Warnf(ctx, "could not enqueue probe for blob %q: %v", key, err)
	}

	logger.Infof(ctx, "✅  Registered %s variant %q on asset #%s", quality, key, asset.ID)
	return &port.UploadVariantOutput{
		AssetID:    asset.ID,
		Quality:    quality,
		StorageKey: key,
	}, nil
}
