package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"skillswap_server/auth"
	"skillswap_server/models"
)

type contextKey string

const authUserKey contextKey = "authUser"

// AuthUser is the identity attached to a request after Protect runs
type AuthUser struct {
	ID   string
	Role string
}

// Protect rejects requests without a valid Bearer token and stores the
// caller's identity in the request context
func Protect(jwtService *auth.JWTService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w, "Not authorized, no token")
				return
			}

			claims, err := jwtService.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				unauthorized(w, "Not authorized, token failed")
				return
			}

			user := AuthUser{ID: claims.Subject, Role: claims.Role}
			ctx := context.WithValue(r.Context(), authUserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin requires the authenticated caller to have the admin role.
// Must run after Protect.
func Admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok || user.Role != models.RoleAdmin {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]string{"message": "Not authorized as an administrator"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserFromContext returns the identity stored by Protect
func UserFromContext(ctx context.Context) (AuthUser, bool) {
	user, ok := ctx.Value(authUserKey).(AuthUser)
	return user, ok
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
