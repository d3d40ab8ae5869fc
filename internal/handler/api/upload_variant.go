package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/striming/videos-ms-go/internal/api_context"
	"github.com/striming/videos-ms-go/internal/logger"
	"github.com/striming/videos-ms-go/internal/port"
	"github.com/striming/videos-ms-go/internal/usecase/catalog"
	"github.com/striming/videos-ms-go/internal/validation"
)

// UploadVariantHandler ingests one already-encoded rendition. The request
// body is the raw binary; resolution and bitrate ride in query parameters so
// the body can stream straight into the blob store.
func UploadVariantHandler(svc port.VariantUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}
		quality, ok := api_context.QualityFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "quality is required", nil)
			return
		}

		q := r.URL.Query()
		bitrate, _ := strconv.ParseInt(q.Get("bitrate"), 10, 64)

		in := port.UploadVariantInput{
			AssetID:     id,
			Quality:     quality,
			Resolution:  q.Get("resolution"),
			Bitrate:     bitrate,
			ContentType: r.Header.Get("Content-Type"),
			SizeBytes:   r.ContentLength,
			Body:        r.Body,
		}

		if errs := validation.ValidateStruct(in); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "Validation error (could not encode details)", err)
				return
			}

			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
			return
		}

		out, err := svc.UploadVariant(r.Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, catalog.ErrAssetNotFound):
				WriteError(w, http.StatusNotFound, "Asset not found", nil)
			case errors.Is(err, catalog.ErrUnknownQuality):
				WriteError(w, http.StatusBadRequest, "Unknown quality tag", err)
			case errors.Is(err, catalog.ErrQualityExists):
				WriteError(w, http.StatusConflict, "Asset already has a variant for this quality", err)
			default:
				WriteError(w, http.StatusInternalServerError, "Could not upload variant", err)
			}
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		logger.Infof(r.Context(), "✅  Successfully uploaded %s variant for asset #%s", out.Quality, out.AssetID)
	}
}
