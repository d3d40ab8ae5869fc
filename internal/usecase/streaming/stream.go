package streaming

import (
	"context"
	"net/http"

	"github.com/striming/videos-ms-go/internal/logger"
	"github.com/striming/videos-ms-go/internal/port"
	"github.com/striming/videos-ms-go/internal/usecase/catalog"
)

// ContentTypePassthrough makes the streamer serve whatever type the store
// recorded at upload time instead of forcing one.
const ContentTypePassthrough = "passthrough"

const defaultContentType = "video/mp4"

type streamerSrv struct {
	repo             port.AssetRepository
	store            port.BlobStore
	guard            port.AccessGuard
	forceContentType string
}

// compile-time check: *streamerSrv must satisfy port.VariantStreamer
var _ port.VariantStreamer = (*streamerSrv)(nil)

// NewStreamer builds the range streamer. A nil guard disables per-asset
// authorization. forceContentType is either a MIME type stamped onto every
// response or ContentTypePassthrough.
func NewStreamer(repo port.AssetRepository, store port.BlobStore, g port.AccessGuard, forceContentType string) port.VariantStreamer {
	return &streamerSrv{repo: repo, store: store, guard: g, forceContentType: forceContentType}
}

// StreamVariant resolves a storage reference to its blob and plans the
// response: full delivery when no range header was sent, a single partial
// window otherwise. The reference must belong to an active asset the caller
// is authorized to read; orphaned or deactivated blobs are never served. The
// plan's body is a lazy independent read the caller pipes to the sink and
// closes.
func (s *streamerSrv) StreamVariant(ctx context.Context, in port.StreamVariantInput) (*port.StreamPlan, error) {
	asset, err := s.repo.GetByStorageKey(ctx, in.Ref)
	if err != nil {
		return nil, err
	}
	if !asset.IsActive {
		return nil, catalog.ErrAssetNotFound
	}

	// authorize against the owning asset before touching the store
	if s.guard != nil {
		if _, err := s.guard.Authorize(ctx, in.Credential, asset.ID); err != nil {
			return nil, err
		}
	}

	info, err := s.store.Stat(ctx, in.Ref)
	if err != nil {
		return nil, err
	}

	rng, err := parseRange(in.RangeHeader, info.SizeBytes)
	if err != nil {
		return nil, err
	}

	contentType := s.resolveContentType(info.ContentType)

	if rng == nil {
		body, err := s.store.Open(ctx, in.Ref)
		if err != nil {
			return nil, err
		}
		logger.Debugf(ctx, "streaming full blob %q (%d bytes)", in.Ref, info.SizeBytes)
		return &port.StreamPlan{
			Status:        http.StatusOK,
			ContentType:   contentType,
			ContentLength: info.SizeBytes,
			TotalSize:     info.SizeBytes,
			Body:          body,
		}, nil
	}

	body, err := s.store.OpenRange(ctx, in.Ref, rng.start, rng.end)
	if err != nil {
		return nil, err
	}
	logger.Debugf(ctx, "streaming blob %q bytes %d-%d of %d", in.Ref, rng.start, rng.end, info.SizeBytes)
	return &port.StreamPlan{
		Status:        http.StatusPartialContent,
		ContentType:   contentType,
		ContentLength: rng.length(),
		ContentRange:  rng.contentRange(info.SizeBytes),
		TotalSize:     info.SizeBytes,
		Body:          body,
	}, nil
}

func (s *streamerSrv) resolveContentType(stored string) string {
	if s.forceContentType != "" && s.forceContentType != ContentTypePassthrough {
		return s.forceContentType
	}
	if stored == "" {
		return defaultContentType
	}
	return stored
}
