package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/tailwatch/tailwatch/internal/api/response"
)

// Auth provides static bearer-token authentication for the ingest surface.
// The token comes from environment configuration; there is no key store.
type Auth struct {
	token string
}

// NewAuth creates a new Auth middleware.
func NewAuth(token string) *Auth {
	return &Auth{token: token}
}

// Authenticate validates the Bearer token with a constant-time comparison.
func (a *Auth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawToken := extractBearerToken(r)
		if rawToken == "" {
			response.Error(w, http.StatusUnauthorized,
				"INVALID_TOKEN", "Missing or invalid Authorization header", nil)
			return
		}

		if subtle.ConstantTimeCompare([]byte(rawToken), []byte(a.token)) != 1 {
			response.Error(w, http.StatusUnauthorized,
				"INVALID_TOKEN", "Invalid API token", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
