package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/striming/videos-ms-go/internal/logger"
	"github.com/striming/videos-ms-go/internal/port"
	"github.com/striming/videos-ms-go/internal/validation"
)

func CreateAssetHandler(svc port.AssetCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req port.CreateAssetInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "Validation error (could not encode details)", fmt.Errorf("encoding validation errors: %w", err))
				return
			}

			// return the validation errors payload directly
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
			return
		}

		out, err := svc.CreateAsset(r.Context(), req)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not create asset", err)
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		logger.Infof(r.Context(), "✅  Successfully created asset #%s", out.ID)
	}
}
