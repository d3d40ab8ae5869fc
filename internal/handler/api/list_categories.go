package api

import (
	"net/http"

	"github.com/striming/videos-ms-go/internal/logger"
	"github.com/striming/videos-ms-go/internal/port"
)

func ListCategoriesHandler(svc port.CategoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.ListCategories(r.Context())
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not list categories", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully listed %d categories", len(out.Categories))
	}
}
