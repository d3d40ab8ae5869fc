package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/striming/videos-ms-go/internal/mock"
	"github.com/striming/videos-ms-go/internal/model"
	"github.com/striming/videos-ms-go/internal/port"
)

func TestListAssets_RepoError(t *testing.T) {
	repo := &mock.AssetRepository{ListErr: errors.New("db fail")}
	svc := NewAssetLister(repo)

	_, err := svc.ListAssets(context.Background(), port.ListAssetsInput{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestListAssets_DefaultsPagination(t *testing.T) {
	repo := &mock.AssetRepository{}
	svc := NewAssetLister(repo)

	out, err := svc.ListAssets(context.Background(), port.ListAssetsInput{Page: 0, Limit: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.GotFilter.Page != 1 || repo.GotFilter.Limit != 20 {
		t.Errorf("expected defaults page=1 limit=20, got %+v", repo.GotFilter)
	}
	if out.Pagination.Page != 1 || out.Pagination.Limit != 20 {
		t.Errorf("unexpected pagination: %+v", out.Pagination)
	}
}

func TestListAssets_CapsLimit(t *testing.T) {
	repo := &mock.AssetRepository{}
	svc := NewAssetLister(repo)

	_, err := svc.ListAssets(context.Background(), port.ListAssetsInput{Page: 2, Limit: 5000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.GotFilter.Limit != 100 {
		t.Errorf("expected limit capped at 100, got %d", repo.GotFilter.Limit)
	}
}

func TestListAssets_ComputesPages(t *testing.T) {
	repo := &mock.AssetRepository{
		ListOut: []model.Asset{
			{Title: "one"},
			{Title: "two"},
		},
		ListTotal: 45,
	}
	svc := NewAssetLister(repo)

	out, err := svc.ListAssets(context.Background(), port.ListAssetsInput{Search: "cats", Category: "animals", Page: 3, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.GotFilter.Search != "cats" || repo.GotFilter.Category != "animals" {
		t.Errorf("filter not forwarded: %+v", repo.GotFilter)
	}
	if len(out.Assets) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(out.Assets))
	}
	if out.Pagination.Total != 45 || out.Pagination.Pages != 5 {
		t.Errorf("expected total=45 pages=5, got %+v", out.Pagination)
	}
}

func TestListAssets_ExactPageBoundary(t *testing.T) {
	repo := &mock.AssetRepository{ListTotal: 40}
	svc := NewAssetLister(repo)

	out, err := svc.ListAssets(context.Background(), port.ListAssetsInput{Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Pagination.Pages != 4 {
		t.Errorf("expected 4 pages, got %d", out.Pagination.Pages)
	}
}
