package catalog

import (
	"context"

	"github.com/striming/videos-ms-go/internal/port"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type assetListerSrv struct {
	repo port.AssetRepository
}

// compile-time check: *assetListerSrv must satisfy port.AssetLister
var _ port.AssetLister = (*assetListerSrv)(nil)

func NewAssetLister(repo port.AssetRepository) port.AssetLister {
	return &assetListerSrv{repo: repo}
}

// ListAssets searches active catalog entries, newest first. The summaries
// are the low-trust view: no variant listing, no storage keys.
func (s *assetListerSrv) ListAssets(ctx context.Context, in port.ListAssetsInput) (*port.ListAssetsOutput, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	assets, total, err := s.repo.List(ctx, port.ListAssetsFilter{
		Search:   in.Search,
		Category: in.Category,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	summaries := make([]port.AssetSummaryOutput, 0, len(assets))
	for _, a := range assets {
		summaries = append(summaries, port.AssetSummaryOutput{
			ID:           a.ID,
			Title:        a.Title,
			Description:  a.Description,
			Category:     a.Category,
			DurationSecs: a.DurationSecs,
			Views:        a.Views,
			CreatedAt:    a.CreatedAt,
		})
	}

	pages := total / limit
	if total%limit != 0 {
		pages++
	}

	return &port.ListAssetsOutput{
		Assets: summaries,
		Pagination: port.PaginationOutput{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	}, nil
}
