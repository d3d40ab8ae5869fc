package catalog

import (
	"context"

	"github.com/striming/videos-ms-go/internal/port"
)

type categoryListerSrv struct {
	repo port.AssetRepository
}

// compile-time check: *categoryListerSrv must satisfy port.CategoryLister
var _ port.CategoryLister = (*categoryListerSrv)(nil)

func NewCategoryLister(repo port.AssetRepository) port.CategoryLister {
	return &categoryListerSrv{repo: repo}
}

func (s *categoryListerSrv) ListCategories(ctx context.Context) (*port.ListCategoriesOutput, error) {
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []string{}
	}
	return &port.ListCategoriesOutput{Categories: categories}, nil
}
