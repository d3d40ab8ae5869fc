package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/striming/videos-ms-go/internal/model"
	"github.com/striming/videos-ms-go/internal/port"
	"github.com/striming/videos-ms-go/internal/usecase/catalog"
	"github.com/striming/videos-ms-go/internal/uuid"
)

type AssetRepository struct {
	db *sql.DB
}

// compile-time check: *AssetRepository must satisfy port.AssetRepository
var _ port.AssetRepository = (*AssetRepository)(nil)

func NewAssetRepository(db *sql.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) Create(ctx context.Context, asset *model.Asset) error {
	log.Printf("creating database record for asset #%s...", asset.ID)

	const query = `
      INSERT INTO assets
        (id, title, description, category, duration_secs, views, is_active)
      VALUES (?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		asset.ID, asset.Title, asset.Description,
		asset.Category, asset.DurationSecs,
		asset.Views, asset.IsActive,
	)
	return err
}

func (r *AssetRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Asset, error) {
	log.Printf("fetching asset #%s from the database...", id)

	const query = `
      SELECT id, title, description, category, duration_secs, views, is_active, created_at, updated_at
      FROM assets
      WHERE id = ?
    `
	row := r.db.QueryRowContext(ctx, query, id)
	asset, err := scanAsset(row)
	if err != nil {
		return nil, err
	}

	if err := r.loadVariants(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

func (r *AssetRepository) GetByStorageKey(ctx context.Context, storageKey string) (*model.Asset, error) {
	log.Printf("fetching asset owning blob %q from the database...", storageKey)

	const query = `
      SELECT a.id, a.title, a.description, a.category, a.duration_secs, a.views, a.is_active, a.created_at, a.updated_at
      FROM assets a
      JOIN variants v ON v.asset_id = a.id
      WHERE v.storage_key = ?
    `
	row := r.db.QueryRowContext(ctx, query, storageKey)
	asset, err := scanAsset(row)
	if err != nil {
		return nil, err
	}

	if err := r.loadVariants(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

func (r *AssetRepository) AddVariant(ctx context.Context, assetID uuid.UUID, v model.Variant) error {
	log.Printf("registering %s variant %q on asset #%s...", v.Quality, v.StorageKey, assetID)

	const query = `
      INSERT INTO variants
        (asset_id, quality, storage_key, bitrate, resolution, size_bytes)
      VALUES (?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		assetID, string(v.Quality), v.StorageKey,
		v.Bitrate, v.Resolution, v.SizeBytes,
	)
	return err
}

func (r *AssetRepository) UpdateVariant(ctx context.Context, assetID uuid.UUID, v model.Variant) error {
	log.Printf("updating variant %q on asset #%s...", v.StorageKey, assetID)

	const query = `
      UPDATE variants
      SET bitrate = ?, resolution = ?, size_bytes = ?
      WHERE asset_id = ? AND storage_key = ?
    `
	_, err := r.db.ExecContext(ctx, query,
		v.Bitrate, v.Resolution, v.SizeBytes,
		assetID, v.StorageKey,
	)
	return err
}

func (r *AssetRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE assets SET views = views + 1 WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *AssetRepository) List(ctx context.Context, filter port.ListAssetsFilter) ([]model.Asset, int, error) {
	where := []string{"is_active = 1"}
	args := []any{}

	if filter.Category != "" {
		where = append(where, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.Search != "" {
		where = append(where, "(title LIKE ? OR description LIKE ? OR category LIKE ?)")
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}

	whereClause := strings.Join(where, " AND ")

	countQuery := "SELECT COUNT(*) FROM assets WHERE " + whereClause
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count assets: %w", err)
	}

	orderBy := "created_at DESC"
	if filter.SortByViews {
		orderBy = "views DESC, created_at DESC"
	}

	query := `
      SELECT id, title, description, category, duration_secs, views, is_active, created_at, updated_at
      FROM assets
      WHERE ` + whereClause + `
      ORDER BY ` + orderBy + `
      LIMIT ? OFFSET ?
    `
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list assets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var assets []model.Asset
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, 0, err
		}
		assets = append(assets, *asset)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return assets, total, nil
}

func (r *AssetRepository) Categories(ctx context.Context) ([]string, error) {
	const query = `
      SELECT DISTINCT category
      FROM assets
      WHERE is_active = 1 AND category <> ''
      ORDER BY category ASC
    `
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *AssetRepository) loadVariants(ctx context.Context, asset *model.Asset) error {
	const query = `
      SELECT quality, storage_key, bitrate, resolution, size_bytes, created_at
      FROM variants
      WHERE asset_id = ?
      ORDER BY created_at ASC
    `
	rows, err := r.db.QueryContext(ctx, query, asset.ID)
	if err != nil {
		return fmt.Errorf("load variants of asset #%s: %w", asset.ID, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var v model.Variant
		var quality string
		if err := rows.Scan(&quality, &v.StorageKey, &v.Bitrate, &v.Resolution, &v.SizeBytes, &v.CreatedAt); err != nil {
			return err
		}
		v.Quality = model.Quality(quality)
		asset.Variants = append(asset.Variants, v)
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAsset(row rowScanner) (*model.Asset, error) {
	var asset model.Asset
	err := row.Scan(
		&asset.ID, &asset.Title, &asset.Description,
		&asset.Category, &asset.DurationSecs,
		&asset.Views, &asset.IsActive,
		&asset.CreatedAt, &asset.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, catalog.ErrAssetNotFound
	}
	if err != nil {
		return nil, err
	}
	return &asset, nil
}
