package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/striming/videos-ms-go/internal/api_context"
	"github.com/striming/videos-ms-go/internal/port"
	"github.com/striming/videos-ms-go/internal/usecase/catalog"
)

func GetAssetHandler(svc port.AssetGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		out, err := svc.GetAsset(r.Context(), id)
		if err != nil {
			if errors.Is(err, catalog.ErrAssetNotFound) {
				WriteError(w, http.StatusNotFound, "Asset not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not get asset details", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		log.Printf("✅  Successfully returned details for asset #%s", id)
	}
}
