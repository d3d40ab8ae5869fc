package mock

import (
	"context"

	"github.com/striming/videos-ms-go/internal/port"
)

// VariantProber implements port.VariantProber for tests.
type VariantProber struct {
	GotStorageKey string
	Err           error
	Called        bool
}

// compile-time check: *VariantProber must satisfy port.VariantProber
var _ port.VariantProber = (*VariantProber)(nil)

func (m *VariantProber) ProbeVariant(ctx context.Context, storageKey string) error {
	m.Called = true
	m.GotStorageKey = storageKey
	return m.Err
}
