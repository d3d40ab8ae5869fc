package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/striming/videos-ms-go/internal/api_context"
	"github.com/striming/videos-ms-go/internal/handler/api"
)

func WithQuality() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			quality := chi.URLParam(r, "quality")
			if quality == "" {
				api.WriteError(w, http.StatusBadRequest, "quality is required", nil)
				return
			}

			ctx := context.WithValue(r.Context(), api_context.QualityKey, quality)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
