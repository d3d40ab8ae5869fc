package worker

import (
	"context"
	"fmt"
	"log"

	"github.com/striming/videos-ms-go/internal/port"
	"github.com/striming/videos-ms-go/internal/task"
)

// ProbeVariantHandler handles a probe-variant task.
// It converts the incoming task payload to the input expected by
// the port.VariantProber service and delegates the call.
func ProbeVariantHandler(ctx context.Context, p task.ProbeVariantPayload, svc port.VariantProber) error {
	if p.StorageKey == "" {
		err := fmt.Errorf("empty storage key in probe-variant payload")
		log.Printf("❌  %v", err)
		return err
	}

	if err := svc.ProbeVariant(ctx, p.StorageKey); err != nil {
		log.Printf("❌  Failed to probe variant %q: %v", p.StorageKey, err)
		return err
	}

	log.Printf("✅  Successfully probed variant %q", p.StorageKey)
	return nil
}
