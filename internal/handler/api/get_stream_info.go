package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/striming/videos-ms-go/internal/api_context"
	"github.com/striming/videos-ms-go/internal/port"
	"github.com/striming/videos-ms-go/internal/usecase/catalog"
)

func GetStreamInfoHandler(svc port.StreamInfoGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		out, err := svc.GetStreamInfo(r.Context(), id)
		if err != nil {
			if errors.Is(err, catalog.ErrAssetNotFound) {
				WriteError(w, http.StatusNotFound, "Asset not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not get stream info", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		log.Printf("✅  Successfully returned stream info for asset #%s", id)
	}
}
