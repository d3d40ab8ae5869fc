package mock

import (
	"context"

	"github.com/striming/videos-ms-go/internal/port"
)

// TaskDispatcher implements port.TaskDispatcher for tests.
type TaskDispatcher struct {
	GotStorageKey string
	EnqueueErr    error
	EnqueueCalled bool
}

// compile-time check: *TaskDispatcher must satisfy port.TaskDispatcher
var _ port.TaskDispatcher = (*TaskDispatcher)(nil)

func (m *TaskDispatcher) EnqueueProbeVariant(ctx context.Context, storageKey string) error {
	m.EnqueueCalled = true
	m.GotStorageKey = storageKey
	return m.EnqueueErr
}
