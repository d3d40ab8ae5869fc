package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/striming/videos-ms-go/internal/port"
)

type mockAssetLister struct {
	out *port.ListAssetsOutput
	err error
	in  port.ListAssetsInput
}

func (m *mockAssetLister) ListAssets(ctx context.Context, in port.ListAssetsInput) (*port.ListAssetsOutput, error) {
	m.in = in
	return m.out, m.err
}

func TestListAssetsHandler_Error(t *testing.T) {
	h := ListAssetsHandler(&mockAssetLister{err: errors.New("db fail")})
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/assets", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rr.Code)
	}
}

func TestListAssetsHandler_ForwardsQueryParams(t *testing.T) {
	svc := &mockAssetLister{out: &port.ListAssetsOutput{
		Assets:     []port.AssetSummaryOutput{{Title: "some video"}},
		Pagination: port.PaginationOutput{Page: 2, Limit: 5, Total: 11, Pages: 3},
	}}
	h := ListAssetsHandler(svc)
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/assets?search=cats&category=animals&page=2&limit=5", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if svc.in.Search != "cats" || svc.in.Category != "animals" || svc.in.Page != 2 || svc.in.Limit != 5 {
		t.Errorf("query not forwarded: %+v", svc.in)
	}
	var body port.ListAssetsOutput
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Pagination.Pages != 3 || len(body.Assets) != 1 {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestListAssetsHandler_BadNumbersFallBack(t *testing.T) {
	svc := &mockAssetLister{out: &port.ListAssetsOutput{}}
	h := ListAssetsHandler(svc)
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/assets?page=abc&limit=xyz", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if svc.in.Page != 1 || svc.in.Limit != 20 {
		t.Errorf("expected fallback page=1 limit=20, got %+v", svc.in)
	}
}
