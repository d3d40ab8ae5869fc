package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/striming/videos-ms-go/internal/port"
)

func ListAssetsHandler(svc port.AssetLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		in := port.ListAssetsInput{
			Search:   q.Get("search"),
			Category: q.Get("category"),
			Page:     atoiOrDefault(q.Get("page"), 1),
			Limit:    atoiOrDefault(q.Get("limit"), 20),
		}

		out, err := svc.ListAssets(r.Context(), in)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not list assets", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		log.Printf("✅  Successfully listed %d assets (page %d)", len(out.Assets), out.Pagination.Page)
	}
}

func atoiOrDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
