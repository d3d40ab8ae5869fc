package mariadb

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/striming/videos-ms-go/internal/model"
	"github.com/striming/videos-ms-go/internal/port"
	"github.com/striming/videos-ms-go/internal/usecase/catalog"
	msuuid "github.com/striming/videos-ms-go/internal/uuid"
)

var testID = msuuid.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))

func newMockRepo(t *testing.T) (*AssetRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	return NewAssetRepository(sqlDB), mock, func() { _ = sqlDB.Close() }
}

func assetColumns() []string {
	return []string{"id", "title", "description", "category", "duration_secs", "views", "is_active", "created_at", "updated_at"}
}

func assetRow(mock sqlmock.Sqlmock, id msuuid.UUID) *sqlmock.Rows {
	bin, _ := uuid.UUID(id).MarshalBinary()
	now := time.Now()
	return mock.NewRows(assetColumns()).
		AddRow(bin, "some video", "a description", "animals", 90, 42, true, now, now)
}

func variantColumns() []string {
	return []string{"quality", "storage_key", "bitrate", "resolution", "size_bytes", "created_at"}
}

func TestAssetRepository_Create_Success(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	asset := &model.Asset{
		ID:           testID,
		Title:        "some video",
		Description:  "a description",
		Category:     "animals",
		DurationSecs: 90,
		IsActive:     true,
	}

	mock.ExpectExec(regexp.QuoteMeta(`
      INSERT INTO assets
        (id, title, description, category, duration_secs, views, is_active)
      VALUES (?, ?, ?, ?, ?, ?, ?)
    `)).
		WithArgs(asset.ID, asset.Title, asset.Description, asset.Category, asset.DurationSecs, asset.Views, asset.IsActive).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), asset); err != nil {
		t.Errorf("Create() returned unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestAssetRepository_Create_ExecError(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO assets").
		WillReturnError(errors.New("db down"))

	if err := repo.Create(context.Background(), &model.Asset{ID: testID}); err == nil {
		t.Error("expected error, got nil")
	}
}

func TestAssetRepository_GetByID_Success(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	mock.ExpectQuery("SELECT id, title, description, category, duration_secs, views, is_active, created_at, updated_at").
		WithArgs(testID).
		WillReturnRows(assetRow(mock, testID))
	mock.ExpectQuery("SELECT quality, storage_key, bitrate, resolution, size_bytes, created_at").
		WithArgs(testID).
		WillReturnRows(mock.NewRows(variantColumns()).
			AddRow("480p", "a.mp4", 1200, "854x480", 1000, time.Now()).
			AddRow("720p", "b.mp4", 3000, "1280x720", 2500, time.Now()))

	asset, err := repo.GetByID(context.Background(), testID)
	if err != nil {
		t.Fatalf("GetByID() returned unexpected error: %v", err)
	}
	if asset.Title != "some video" || asset.Views != 42 {
		t.Errorf("unexpected asset: %+v", asset)
	}
	if len(asset.Variants) != 2 || asset.Variants[0].Quality != model.Quality480p {
		t.Errorf("unexpected variants: %+v", asset.Variants)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestAssetRepository_GetByID_NotFound(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	mock.ExpectQuery("SELECT id, title").
		WithArgs(testID).
		WillReturnRows(mock.NewRows(assetColumns()))

	_, err := repo.GetByID(context.Background(), testID)
	if !errors.Is(err, catalog.ErrAssetNotFound) {
		t.Errorf("expected ErrAssetNotFound, got %v", err)
	}
}

func TestAssetRepository_GetByStorageKey_Success(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	mock.ExpectQuery("JOIN variants v ON v.asset_id = a.id").
		WithArgs("a.mp4").
		WillReturnRows(assetRow(mock, testID))
	mock.ExpectQuery("SELECT quality, storage_key").
		WithArgs(testID).
		WillReturnRows(mock.NewRows(variantColumns()).
			AddRow("480p", "a.mp4", 1200, "854x480", 1000, time.Now()))

	asset, err := repo.GetByStorageKey(context.Background(), "a.mp4")
	if err != nil {
		t.Fatalf("GetByStorageKey() returned unexpected error: %v", err)
	}
	if _, ok := asset.VariantByStorageKey("a.mp4"); !ok {
		t.Error("expected the owning asset to carry the variant")
	}
}

func TestAssetRepository_GetByStorageKey_NotFound(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	mock.ExpectQuery("JOIN variants").
		WithArgs("gone.mp4").
		WillReturnRows(mock.NewRows(assetColumns()))

	_, err := repo.GetByStorageKey(context.Background(), "gone.mp4")
	if !errors.Is(err, catalog.ErrAssetNotFound) {
		t.Errorf("expected ErrAssetNotFound, got %v", err)
	}
}

func TestAssetRepository_AddVariant(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	v := model.Variant{
		Quality:    model.Quality720p,
		StorageKey: "b.mp4",
		Bitrate:    3000,
		Resolution: "1280x720",
		SizeBytes:  2500,
	}
	mock.ExpectExec(regexp.QuoteMeta(`
      INSERT INTO variants
        (asset_id, quality, storage_key, bitrate, resolution, size_bytes)
      VALUES (?, ?, ?, ?, ?, ?)
    `)).
		WithArgs(testID, "720p", v.StorageKey, v.Bitrate, v.Resolution, v.SizeBytes).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.AddVariant(context.Background(), testID, v); err != nil {
		t.Errorf("AddVariant() returned unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestAssetRepository_UpdateVariant(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	v := model.Variant{StorageKey: "b.mp4", Bitrate: 3200, Resolution: "1280x720", SizeBytes: 4000}
	mock.ExpectExec("UPDATE variants").
		WithArgs(v.Bitrate, v.Resolution, v.SizeBytes, testID, v.StorageKey).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateVariant(context.Background(), testID, v); err != nil {
		t.Errorf("UpdateVariant() returned unexpected error: %v", err)
	}
}

func TestAssetRepository_IncrementViews(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE assets SET views = views + 1 WHERE id = ?`)).
		WithArgs(testID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.IncrementViews(context.Background(), testID); err != nil {
		t.Errorf("IncrementViews() returned unexpected error: %v", err)
	}
}

func TestAssetRepository_List_NoFilter(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM assets WHERE is_active = 1")).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("ORDER BY created_at DESC").
		WithArgs(20, 0).
		WillReturnRows(assetRow(mock, testID))

	assets, total, err := repo.List(context.Background(), port.ListAssetsFilter{Page: 1, Limit: 20})
	if err != nil {
		t.Fatalf("List() returned unexpected error: %v", err)
	}
	if total != 1 || len(assets) != 1 {
		t.Errorf("expected 1 asset, got total=%d len=%d", total, len(assets))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestAssetRepository_List_SearchAndCategory(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs("animals", "%cats%", "%cats%", "%cats%").
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("ORDER BY created_at DESC").
		WithArgs("animals", "%cats%", "%cats%", "%cats%", 10, 10).
		WillReturnRows(mock.NewRows(assetColumns()))

	assets, total, err := repo.List(context.Background(), port.ListAssetsFilter{
		Search:   "cats",
		Category: "animals",
		Page:     2,
		Limit:    10,
	})
	if err != nil {
		t.Fatalf("List() returned unexpected error: %v", err)
	}
	if total != 0 || len(assets) != 0 {
		t.Errorf("expected empty result, got total=%d len=%d", total, len(assets))
	}
}

func TestAssetRepository_List_SortByViews(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM assets WHERE is_active = 1")).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("ORDER BY views DESC, created_at DESC").
		WithArgs(10, 0).
		WillReturnRows(assetRow(mock, testID))

	_, _, err := repo.List(context.Background(), port.ListAssetsFilter{Page: 1, Limit: 10, SortByViews: true})
	if err != nil {
		t.Fatalf("List() returned unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestAssetRepository_Categories(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	mock.ExpectQuery("SELECT DISTINCT category").
		WillReturnRows(mock.NewRows([]string{"category"}).AddRow("animals").AddRow("music"))

	categories, err := repo.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories() returned unexpected error: %v", err)
	}
	if len(categories) != 2 || categories[0] != "animals" || categories[1] != "music" {
		t.Errorf("unexpected categories: %v", categories)
	}
}

func TestAssetRepository_Categories_QueryError(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	mock.ExpectQuery("SELECT DISTINCT category").
		WillReturnError(errors.New("db down"))

	if _, err := repo.Categories(context.Background()); err == nil {
		t.Error("expected error, got nil")
	}
}

func TestAssetRepository_List_CountError(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WillReturnError(errors.New("db down"))

	if _, _, err := repo.List(context.Background(), port.ListAssetsFilter{Page: 1, Limit: 20}); err == nil {
		t.Error("expected error, got nil")
	}
}
