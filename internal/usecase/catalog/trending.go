package catalog

import (
	"context"

	"github.com/striming/videos-ms-go/internal/port"
)

const (
	defaultTrendingLimit = 10
	maxTrendingLimit     = 50
)

type trendingListerSrv struct {
	repo port.AssetRepository
}

// compile-time check: *trendingListerSrv must satisfy port.TrendingLister
var _ port.TrendingLister = (*trendingListerSrv)(nil)

func NewTrendingLister(repo port.AssetRepository) port.TrendingLister {
	return &trendingListerSrv{repo: repo}
}

// ListTrending returns the most-viewed active assets as public summaries.
func (s *trendingListerSrv) ListTrending(ctx context.Context, limit int) (*port.ListTrendingOutput, error) {
	if limit < 1 {
		limit = defaultTrendingLimit
	}
	if limit > maxTrendingLimit {
		limit = maxTrendingLimit
	}

	assets, _, err := s.repo.List(ctx, port.ListAssetsFilter{
		Page:        1,
		Limit:       limit,
		SortByViews: true,
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

	return &port.ListTrendingOutput{Assets: summaries}, nil
}
