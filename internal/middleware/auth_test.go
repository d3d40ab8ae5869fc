package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"
	"github.com/striming/videos-ms-go/internal/api_context"
	"github.com/striming/videos-ms-go/internal/guard"
	"github.com/striming/videos-ms-go/internal/mock"
	"github.com/striming/videos-ms-go/internal/port"
)

const testSecret = "super-secret"

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func authedHandler(t *testing.T, wantUserID string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok := api_context.AuthUserIDFromContext(r.Context())
		if !ok {
			t.Error("expected a user id in context")
		}
		if uid != wantUserID {
			t.Errorf("expected user id %q, got %q", wantUserID, uid)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestWithAuth_NilGuardPassesThrough(t *testing.T) {
	called := false
	h := WithAuth(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/stream/a.mp4", nil))
	if !called {
		t.Error("expected the inner handler to run without a guard")
	}
}

func TestWithAuth_MissingCredential(t *testing.T) {
	h := WithAuth(guard.NewJWTGuard(testSecret))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("inner handler must not run")
	}))
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/stream/a.mp4", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
}

func TestWithAuth_BadToken(t *testing.T) {
	h := WithAuth(guard.NewJWTGuard(testSecret))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("inner handler must not run")
	}))
	rr := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodGet, "/stream/a.mp4", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "wrong-secret", jwt.MapClaims{"sub": "user-1"}))
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
}

func TestWithAuth_HeaderToken(t *testing.T) {
	h := WithAuth(guard.NewJWTGuard(testSecret))(authedHandler(t, "user-1"))
	rr := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodGet, "/stream/a.mp4", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, testSecret, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}))
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rr.Code)
	}
}

// Native <video> tags cannot attach headers, so the token may ride in the
// query string.
func TestWithAuth_QueryToken(t *testing.T) {
	h := WithAuth(guard.NewJWTGuard(testSecret))(authedHandler(t, "user-1"))
	rr := httptest.NewRecorder()

	tok := signedToken(t, testSecret, jwt.MapClaims{"sub": "user-1"})
	req := httptest.NewRequest(http.MethodGet, "/stream/a.mp4?token="+tok, nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rr.Code)
	}
}

func TestWithAuth_HeaderWinsOverQuery(t *testing.T) {
	h := WithAuth(guard.NewJWTGuard(testSecret))(authedHandler(t, "header-user"))
	rr := httptest.NewRecorder()

	headerTok := signedToken(t, testSecret, jwt.MapClaims{"sub": "header-user"})
	queryTok := signedToken(t, testSecret, jwt.MapClaims{"sub": "query-user"})
	req := httptest.NewRequest(http.MethodGet, "/stream/a.mp4?token="+queryTok, nil)
	req.Header.Set("Authorization", "Bearer "+headerTok)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rr.Code)
	}
}

// WithAuth leaves the raw credential in context so asset-scoped callees can
// re-authorize with it.
func TestWithAuth_StashesCredential(t *testing.T) {
	tok := signedToken(t, testSecret, jwt.MapClaims{"sub": "user-1"})
	h := WithAuth(guard.NewJWTGuard(testSecret))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := api_context.CredentialFromContext(r.Context())
		if !ok || got != tok {
			t.Errorf("expected credential %q in context, got %q", tok, got)
		}
	}))
	rr := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodGet, "/stream/a.mp4", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rr.Code)
	}
}

func assetAuthChain(g *mock.AccessGuard, next http.Handler) http.Handler {
	r := chi.NewRouter()
	r.With(WithAssetID(), WithAssetAuth(g)).Get("/assets/{id}/manifest", next.ServeHTTP)
	return r
}

func TestWithAssetAuth_MissingCredential(t *testing.T) {
	g := &mock.AccessGuard{}
	h := assetAuthChain(g, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("inner handler must not run")
	}))
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/assets/aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee/manifest", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
	if g.AuthorizeCalled {
		t.Error("guard must not run without a credential")
	}
}

func TestWithAssetAuth_Forbidden(t *testing.T) {
	g := &mock.AccessGuard{AuthorizeErr: guard.ErrForbidden}
	h := assetAuthChain(g, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("inner handler must not run")
	}))
	rr := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodGet, "/assets/aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee/manifest", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rr.Code)
	}
}

func TestWithAssetAuth_BadCredential(t *testing.T) {
	g := &mock.AccessGuard{AuthorizeErr: guard.ErrUnauthorized}
	h := assetAuthChain(g, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("inner handler must not run")
	}))
	rr := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodGet, "/assets/aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee/manifest", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
}

// The guard must be asked about the asset from the URL, not just the token.
func TestWithAssetAuth_AuthorizesTheAsset(t *testing.T) {
	g := &mock.AccessGuard{PrincipalOut: port.Principal{UserID: "user-1"}}
	h := assetAuthChain(g, authedHandler(t, "user-1"))
	rr := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodGet, "/assets/aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee/manifest", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rr.Code)
	}
	if !g.AuthorizeCalled {
		t.Fatal("expected the guard's Authorize to run")
	}
	if g.GotCredential != "some-token" {
		t.Errorf("expected credential forwarded, got %q", g.GotCredential)
	}
	if g.GotAssetID.String() != "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee" {
		t.Errorf("expected the URL asset id, got %v", g.GotAssetID)
	}
}

func TestWithAssetAuth_NilGuardPassesThrough(t *testing.T) {
	called := false
	h := WithAssetAuth(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/assets/aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee/manifest", nil))
	if !called {
		t.Error("expected the inner handler to run without a guard")
	}
}

func TestWithRole_Forbidden(t *testing.T) {
	g := guard.NewJWTGuard(testSecret)
	h := WithAuth(g)(WithRole(guard.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("inner handler must not run")
	})))
	rr := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodPost, "/assets", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, testSecret, jwt.MapClaims{
		"sub":   "user-1",
		"roles": []string{"viewer"},
	}))
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rr.Code)
	}
}

func TestWithRole_Allowed(t *testing.T) {
	g := guard.NewJWTGuard(testSecret)
	called := false
	h := WithAuth(g)(WithRole(guard.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})))
	rr := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodPost, "/assets", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, testSecret, jwt.MapClaims{
		"sub":   "admin-1",
		"roles": []string{"admin", "viewer"},
	}))
	h.ServeHTTP(rr, req)
	if !called || rr.Code != http.StatusOK {
		t.Errorf("expected the inner handler to run, got %d", rr.Code)
	}
}

func TestWithRole_PassthroughWithoutAuth(t *testing.T) {
	called := false
	h := WithRole(guard.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/assets", nil))
	if !called {
		t.Error("role checks degrade to passthrough when auth is disabled")
	}
}
