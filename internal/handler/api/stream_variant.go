package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/striming/videos-ms-go/internal/api_context"
	"github.com/striming/videos-ms-go/internal/guard"
	"github.com/striming/videos-ms-go/internal/logger"
	"github.com/striming/videos-ms-go/internal/port"
	"github.com/striming/videos-ms-go/internal/usecase/catalog"
	"github.com/striming/videos-ms-go/internal/usecase/streaming"
)

// StreamVariantHandler serves the bytes of one variant's blob, whole or as a
// single range window. The body is piped straight from the blob store; a
// read failure after the headers went out can only abort the connection.
func StreamVariantHandler(svc port.VariantStreamer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref, ok := api_context.VariantRefFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "variant reference is required", nil)
			return
		}

		credential, _ := api_context.CredentialFromContext(r.Context())
		plan, err := svc.StreamVariant(r.Context(), port.StreamVariantInput{
			Ref:         ref,
			RangeHeader: r.Header.Get("Range"),
			Credential:  credential,
		})
		if err != nil {
			writeStreamError(w, ref, err)
			return
		}
		defer func() { _ = plan.Body.Close() }()

		h := w.Header()
		h.Set("Accept-Ranges", "bytes")
		h.Set("Content-Type", plan.ContentType)
		h.Set("Content-Length", strconv.FormatInt(plan.ContentLength, 10))
		h.Set("Cache-Control", "public, max-age=3600")
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", "Range, Authorization")
		h.Set("X-Content-Type-Options", "nosniff")
		if plan.ContentRange != "" {
			h.Set("Content-Range", plan.ContentRange)
		}
		w.WriteHeader(plan.Status)

		if _, err := io.Copy(w, plan.Body); err != nil {
			// headers are out; nothing left to do but drop the connection
			if !errors.Is(err, context.Canceled) {
				logger.Errorf(r.Context(), "❌  Stream of blob %q aborted: %v", ref, err)
			}
			return
		}
	}
}

func writeStreamError(w http.ResponseWriter, ref string, err error) {
	switch {
	case errors.Is(err, catalog.ErrAssetNotFound), errors.Is(err, streaming.ErrBlobNotFound):
		WriteError(w, http.StatusNotFound, "Video not found", nil)
	case errors.Is(err, guard.ErrForbidden):
		WriteError(w, http.StatusForbidden, "forbidden", nil)
	case errors.Is(err, guard.ErrUnauthorized):
		WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
	case errors.Is(err, streaming.ErrMalformedRange):
		WriteError(w, http.StatusBadRequest, "Malformed range header", err)
	case errors.Is(err, streaming.ErrRangeNotSatisfiable):
		var rangeErr *streaming.RangeNotSatisfiableError
		if errors.As(err, &rangeErr) {
			w.Header().Set("Content-Range", fmt.Sprintf("bytes */%d", rangeErr.Size))
		}
		WriteError(w, http.StatusRequestedRangeNotSatisfiable, "Range not satisfiable", err)
	default:
		WriteError(w, http.StatusInternalServerError, "Stream error", err)
	}
}
