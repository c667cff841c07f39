// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// TokenVerifier validates an access token and returns the user id it asserts.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

// Auth is a middleware that enforces bearer-token authentication.
//
// It expects an "Authorization: Bearer <token>" header. A missing header,
// a malformed header, or a token that fails verification all produce a
// 401 response without invoking the next handler.
//
// On success the resolved user id is stored in the request context, so it
// can be used downstream as the authenticated identity. The middleware
// keeps no per-request state; the only shared data is the verifier's
// read-only signing key.
func Auth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			userID, err := verifier.Verify(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// bearerToken extracts the token from a "Bearer <token>" header value.
// Anything else yields an empty string.
func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// WithUserID returns a copy of ctx carrying the authenticated user id.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// GetUserIDFromContext extracts the authenticated user id from the request
// context. Returns 0 if not found.
func GetUserIDFromContext(ctx context.Context) int64 {
	val := ctx.Value(userIDKey)
	if id, ok := val.(int64); ok {
		return id
	}
	return 0
}
