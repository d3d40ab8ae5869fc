package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/striming/videos-ms-go/internal/api_context"
	"github.com/striming/videos-ms-go/internal/handler/api"
)

func WithVariantRef() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ref := chi.URLParam(r, "ref")
			if ref == "" {
				api.WriteError(w, http.StatusBadRequest, "variant reference is required", nil)
				return
			}

			ctx := context.WithValue(r.Context(), api_context.VariantRefKey, ref)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
