package model

import (
	"time"

	"github.com/striming/videos-ms-go/internal/uuid"
)

// Asset is a logical video owning one encoded variant per quality.
type Asset struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	DurationSecs int       `json:"duration_secs"`
	Views        int64     `json:"views"`
	IsActive     bool      `json:"is_active"`
	Variants     []Variant `json:"variants,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Variant is one encoded rendition of an asset. Storage keys are globally
// unique and immutable once created; ingest always mints fresh keys.
type Variant struct {
	Quality    Quality   `json:"quality"`
	StorageKey string    `json:"storage_key"`
	Bitrate    int64     `json:"bitrate"`
	Resolution string    `json:"resolution"`
	SizeBytes  int64     `json:"size_bytes"`
	CreatedAt  time.Time `json:"created_at"`
}

// VariantByStorageKey returns the variant carrying the given storage key, if any.
func (a *Asset) VariantByStorageKey(key string) (Variant, bool) {
	for _, v := range a.Variants {
		if v.StorageKey == key {
			return v, true
		}
	}
	return Variant{}, false
}

// HasQuality reports whether the asset already owns a variant for the quality.
func (a *Asset) HasQuality(q Quality) bool {
	for _, v := range a.Variants {
		if v.Quality == q {
			return true
		}
	}
	return false
}
