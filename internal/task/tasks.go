package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const TypeProbeVariant = "variant:probe"

type ProbeVariantPayload struct {
	StorageKey string `json:"storage_key"`
}

// NewProbeVariantTask creates an Asynq task for probing a stored variant blob.
func NewProbeVariantTask(storageKey string) (*asynq.Task, error) {
	p := ProbeVariantPayload{StorageKey: storageKey}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal probe-variant payload: %w", err)
	}
	return asynq.NewTask(TypeProbeVariant, data), nil
}

// ParseProbeVariantPayload parses the task payload to ProbeVariantPayload.
func ParseProbeVariantPayload(t *asynq.Task) (ProbeVariantPayload, error) {
	var p ProbeVariantPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return ProbeVariantPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
