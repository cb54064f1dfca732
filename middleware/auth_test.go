package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillswap_server/auth"
	"skillswap_server/models"
)

func newTestJWT() *auth.JWTService {
	return auth.NewJWTService("test-secret", "skillswap", time.Hour)
}

func protectedHandler(t *testing.T, want AuthUser) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, want, user)
		w.WriteHeader(http.StatusOK)
	})
}

func TestProtectRejectsMissingToken(t *testing.T) {
	handler := Protect(newTestJWT())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/swaps/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectRejectsInvalidToken(t *testing.T) {
	handler := Protect(newTestJWT())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest("GET", "/api/swaps/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectAttachesIdentity(t *testing.T) {
	jwtService := newTestJWT()
	token, err := jwtService.GenerateToken("user-1", models.RoleUser)
	require.NoError(t, err)

	handler := Protect(jwtService)(protectedHandler(t, AuthUser{ID: "user-1", Role: models.RoleUser}))

	req := httptest.NewRequest("GET", "/api/swaps/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminRejectsNonAdmin(t *testing.T) {
	jwtService := newTestJWT()
	token, err := jwtService.GenerateToken("user-1", models.RoleUser)
	require.NoError(t, err)

	handler := Protect(jwtService)(Admin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})))

	req := httptest.NewRequest("GET", "/api/admin/reports", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminAllowsAdmin(t *testing.T) {
	jwtService := newTestJWT()
	token, err := jwtService.GenerateToken("admin-1", models.RoleAdmin)
	require.NoError(t, err)

	handler := Protect(jwtService)(Admin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	req := httptest.NewRequest("GET", "/api/admin/reports", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
