package task

import (
	"context"

	"github.com/striming/videos-ms-go/internal/port"
)

type NoopDispatcher struct{}

var _ port.TaskDispatcher = (*NoopDispatcher)(nil)

func NewNoopDispatcher() *NoopDispatcher { return &NoopDispatcher{} }

func (d *NoopDispatcher) EnqueueProbeVariant(ctx context.Context, storageKey string) error {
	return nil
}
