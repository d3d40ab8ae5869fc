package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/striming/videos-ms-go/internal/mock"
	"github.com/striming/videos-ms-go/internal/task"
)

func TestProbeVariantHandler_EmptyKey(t *testing.T) {
	svc := &mock.VariantProber{}
	err := ProbeVariantHandler(context.Background(), task.ProbeVariantPayload{}, svc)
	if err == nil {
		t.Fatal("expected error for empty storage key")
	}
	if svc.Called {
		t.Error("service should not be called on empty key")
	}
}

func TestProbeVariantHandler_ServiceError(t *testing.T) {
	svcErr := errors.New("svc fail")
	svc := &mock.VariantProber{Err: svcErr}

	err := ProbeVariantHandler(context.Background(), task.ProbeVariantPayload{StorageKey: "a.mp4"}, svc)
	if !errors.Is(err, svcErr) {
		t.Fatalf("got error %v; want %v", err, svcErr)
	}
	if !svc.Called {
		t.Error("service not called")
	}
}

func TestProbeVariantHandler_Success(t *testing.T) {
	svc := &mock.VariantProber{}

	err := ProbeVariantHandler(context.Background(), task.ProbeVariantPayload{StorageKey: "a.mp4"}, svc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.GotStorageKey != "a.mp4" {
		t.Errorf("service got key %q; want %q", svc.GotStorageKey, "a.mp4")
	}
}
