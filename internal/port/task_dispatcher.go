package port

import "context"

// TaskDispatcher enqueues background work for the ingest pipeline.
type TaskDispatcher interface {
	EnqueueProbeVariant(ctx context.Context, storageKey string) error
}
