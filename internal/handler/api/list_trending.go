package api

import (
	"net/http"

	"github.com/striming/videos-ms-go/internal/logger"
	"github.com/striming/videos-ms-go/internal/port"
)

func ListTrendingHandler(svc port.TrendingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := atoiOrDefault(r.URL.Query().Get("limit"), 0)

		out, err := svc.ListTrending(r.Context(), limit)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not list trending assets", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully listed %d trending assets", len(out.Assets))
	}
}
