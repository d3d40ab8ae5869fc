package mock

import (
	"context"

	"github.com/striming/videos-ms-go/internal/model"
	"github.com/striming/videos-ms-go/internal/port"
	"github.com/striming/videos-ms-go/internal/uuid"
)

// AssetRepository implements port.AssetRepository for tests.
type AssetRepository struct {
	// stored values
	AssetOut      *model.Asset
	ListOut       []model.Asset
	ListTotal     int
	CategoriesOut []string

	// captured inputs
	GotID         uuid.UUID
	GotStorageKey string
	GotVariant    model.Variant
	GotFilter     port.ListAssetsFilter

	// errors
	CreateErr          error
	GetByIDErr         error
	GetByStorageKeyErr error
	AddVariantErr      error
	UpdateVariantErr   error
	IncrementViewsErr  error
	ListErr            error
	CategoriesErr      error

	// call flags
	CreateCalled          bool
	GetByIDCalled         bool
	GetByStorageKeyCalled bool
	AddVariantCalled      bool
	UpdateVariantCalled   bool
	IncrementViewsCalled  bool
	ListCalled            bool
	CategoriesCalled      bool
}

// compile-time check: *AssetRepository must satisfy port.AssetRepository
var _ port.AssetRepository = (*AssetRepository)(nil)

func (m *AssetRepository) Create(ctx context.Context, asset *model.Asset) error {
	m.CreateCalled = true
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.AssetOut = asset
	return nil
}

func (m *AssetRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Asset, error) {
	m.GetByIDCalled = true
	m.GotID = id
	if m.GetByIDErr != nil {
		return nil, m.GetByIDErr
	}
	return m.AssetOut, nil
}

func (m *AssetRepository) GetByStorageKey(ctx context.Context, storageKey string) (*model.Asset, error) {
	m.GetByStorageKeyCalled = true
	m.GotStorageKey = storageKey
	if m.GetByStorageKeyErr != nil {
		return nil, m.GetByStorageKeyErr
	}
	return m.AssetOut, nil
}

func (m *AssetRepository) AddVariant(ctx context.Context, assetID uuid.UUID, v model.Variant) error {
	m.AddVariantCalled = true
	m.GotID = assetID
	m.GotVariant = v
	return m.AddVariantErr
}

func (m *AssetRepository) UpdateVariant(ctx context.Context, assetID uuid.UUID, v model.Variant) error {
	m.UpdateVariantCalled = true
	m.GotID = assetID
	m.GotVariant = v
	return m.UpdateVariantErr
}

func (m *AssetRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	m.IncrementViewsCalled = true
	m.GotID = id
	return m.IncrementViewsErr
}

func (m *AssetRepository) List(ctx context.Context, filter port.ListAssetsFilter) ([]model.Asset, int, error) {
	m.ListCalled = true
	m.GotFilter = filter
	if m.ListErr != nil {
		return nil, 0, m.ListErr
	}
	return m.ListOut, m.ListTotal, nil
}

func (m *AssetRepository) Categories(ctx context.Context) ([]string, error) {
	m.CategoriesCalled = true
	if m.CategoriesErr != nil {
		return nil, m.CategoriesErr
	}
	return m.CategoriesOut, nil
}
