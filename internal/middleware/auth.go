package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/striming/videos-ms-go/internal/api_context"
	"github.com/striming/videos-ms-go/internal/guard"
	"github.com/striming/videos-ms-go/internal/handler/api"
	"github.com/striming/videos-ms-go/internal/port"
)

// ExtractCredential pulls the caller's token from the request, trying the
// Authorization header first and the `token` query parameter second. The
// query fallback exists for native <video> tags, which cannot attach headers.
func ExtractCredential(r *http.Request) (string, bool) {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer "), true
	}
	if tok := r.URL.Query().Get("token"); tok != "" {
		return tok, true
	}
	return "", false
}

// WithAuth authenticates the request credential and stashes the principal in
// context, along with the raw credential for downstream per-asset checks. A
// nil guard disables authentication entirely (passthrough).
func WithAuth(g port.AccessGuard) func(http.Handler) http.Handler {
	if g == nil {
		return passthrough
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			credential, ok := ExtractCredential(r)
			if !ok {
				api.WriteError(w, http.StatusUnauthorized, "missing bearer token", nil)
				return
			}

			principal, err := g.Authenticate(r.Context(), credential)
			if err != nil {
				api.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(stashPrincipal(r.Context(), credential, principal)))
		})
	}
}

// WithAssetAuth authorizes the caller for the asset already resolved into
// context, so it must run after WithAssetID. Unlike WithAuth it asks the
// guard for per-asset read access, not just a valid credential.
func WithAssetAuth(g port.AccessGuard) func(http.Handler) http.Handler {
	if g == nil {
		return passthrough
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			credential, ok := ExtractCredential(r)
			if !ok {
				api.WriteError(w, http.StatusUnauthorized, "missing bearer token", nil)
				return
			}
			id, ok := api_context.IDFromContext(r.Context())
			if !ok {
				api.WriteError(w, http.StatusBadRequest, "ID is required", nil)
				return
			}

			principal, err := g.Authorize(r.Context(), credential, id)
			if err != nil {
				if errors.Is(err, guard.ErrForbidden) {
					api.WriteError(w, http.StatusForbidden, "forbidden", nil)
					return
				}
				api.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(stashPrincipal(r.Context(), credential, principal)))
		})
	}
}

// WithRole rejects authenticated callers lacking the role. It must run after
// WithAuth; without a guard in front it degrades to passthrough.
func WithRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roles, ok := api_context.AuthRolesFromContext(r.Context())
			if ok && !(port.Principal{Roles: roles}).HasRole(role) {
				api.WriteError(w, http.StatusForbidden, "forbidden", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func stashPrincipal(ctx context.Context, credential string, p port.Principal) context.Context {
	ctx = context.WithValue(ctx, api_context.AuthUserIDKey, p.UserID)
	ctx = context.WithValue(ctx, api_context.AuthRolesKey, p.Roles)
	return context.WithValue(ctx, api_context.CredentialKey, credential)
}

func passthrough(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
	})
}
