package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mcoot/gamelobby-go/internal/api/apierr"
	"github.com/mcoot/gamelobby-go/internal/model"
)

type contextKey string

const tokenContextKey contextKey = "token"

// Auth creates authentication middleware. It extracts the capability token
// from the request and stores it in the context; what the token actually
// permits is decided downstream, against the session it names.
func Auth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := extractToken(r)
			if raw == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			token, err := model.ParseToken(raw)
			if err != nil {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			ctx := context.WithValue(r.Context(), tokenContextKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken extracts the capability token from the request. The
// Authorization header is preferred; the token query parameter exists for
// EventSource clients, which cannot set headers.
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return r.URL.Query().Get("token")
}

// GetToken returns the capability token from the request context
func GetToken(ctx context.Context) (model.Token, bool) {
	token, ok := ctx.Value(tokenContextKey).(model.Token)
	return token, ok
}

// MustGetToken returns the capability token or panics
func MustGetToken(ctx context.Context) model.Token {
	token, ok := GetToken(ctx)
	if !ok {
		panic("no token in context - auth middleware not applied?")
	}
	return token
}
