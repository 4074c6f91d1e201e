// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Kurniawan20/effiework-sub000/internal/auth"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// TokenParser validates a bearer token.
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// BearerAuth rejects requests without a valid "Authorization: Bearer" token
// with 401 and a {"message"} body. Requests whose "METHOD path" is listed in
// public pass through unauthenticated, as do CORS preflight requests.
//
// On success the user id and username from the token are stored in the
// request context.
func BearerAuth(tokens TokenParser, public ...string) func(http.Handler) http.Handler {
	open := make(map[string]bool, len(public))
	for _, p := range public {
		open[p] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions || open[r.Method+" "+r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
				unauthorized(w, "Authorization header required")
				return
			}

			claims, err := tokens.Parse(token)
			if err != nil {
				unauthorized(w, "Invalid or expired token")
				return
			}
			id, err := claims.UserID()
			if err != nil {
				unauthorized(w, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, id)))
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
}

// GetUserIDFromContext returns the authenticated user id, or 0 if the
// request was not authenticated.
func GetUserIDFromContext(ctx context.Context) int64 {
	if id, ok := ctx.Value(userIDKey).(int64); ok {
		return id
	}
	return 0
}
