package catalog

import (
	"context"
	"fmt"

	"github.com/striming/videos-ms-go/internal/logger"
	"github.com/striming/videos-ms-go/internal/port"
)

type variantProberSrv struct {
	repo  port.AssetRepository
	store port.BlobStore
	cache port.Cache
}

// compile-time check: *variantProberSrv must satisfy port.VariantProber
var _ port.VariantProber = (*variantProberSrv)(nil)

func NewVariantProber(repo port.AssetRepository, store port.BlobStore, cache port.Cache) port.VariantProber {
	return &variantProberSrv{repo: repo, store: store, cache: cache}
}

// ProbeVariant runs after ingest: it stats the stored blob, records the real
// size and, when the asset duration is known, derives the bitrate from it.
func (s *variantProberSrv) ProbeVariant(ctx context.Context, storageKey string) error {
	asset, err := s.repo.GetByStorageKey(ctx, storageKey)
	if err != nil {
		return fmt.Errorf("resolve owning asset of %q: %w", storageKey, err)
	}

	variant, ok := asset.VariantByStorageKey(storageKey)
	if !ok {
		return fmt.Errorf("asset #%s does not carry variant %q", asset.ID, storageKey)
	}

	info, err := s.store.Stat(ctx, storageKey)
	if err != nil {
		return fmt.Errorf("stat blob %q: %w", storageKey, err)
	}

	variant.SizeBytes = info.SizeBytes
	if asset.DurationSecs > 0 {
		variant.Bitrate = info.SizeBytes * 8 / int64(asset.DurationSecs)
	}

	if err := s.repo.UpdateVariant(ctx, asset.ID, variant); err != nil {
		return fmt.Errorf("update variant %q: %w", storageKey, err)
	}

	if err := s.cache.DeleteManifest(ctx, asset.ID); err != nil {
		logger.Warnf(ctx, "could not invalidate manifest cache for asset #%s: %v", asset.ID, err)
	}
	if err := s.cache.DeleteEtagManifest(ctx, asset.ID); err != nil {
		logger.Warnf(ctx, "could not invalidate manifest etag for asset #%s: %v", asset.ID, err)
	}

	logger.Infof(ctx, "probed variant %q: %d bytes, %d b/s", storageKey, variant.SizeBytes, variant.Bitrate)
	return nil
}
