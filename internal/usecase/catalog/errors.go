package catalog

import "errors"

var (
	ErrAssetNotFound  = errors.New("catalog: asset not found")
	ErrQualityExists  = errors.New("catalog: asset already has a variant for this quality")
	ErrUnknownQuality = errors.New("catalog: unknown quality tag")
)
