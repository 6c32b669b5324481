package middleware

import (
	"context"
	"net/http"
	"strings"

	"simgaji/internal/domain/auth"
	"simgaji/internal/transport/http/api"
)

// Authenticator validates a bearer token and returns the session profile.
type Authenticator interface {
	Authenticate(token string) (auth.Profile, bool)
}

// Auth attaches the session profile to the context when the request
// carries a valid token. It never rejects on its own; RequireUser does.
func Auth(service Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				next.ServeHTTP(w, r)
				return
			}

			profile, ok := service.Authenticate(parts[1])
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUser, profile)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUser(ctx context.Context) (auth.Profile, bool) {
	user, ok := ctx.Value(ctxKeyUser).(auth.Profile)
	return user, ok
}

// RequireUser rejects requests without an authenticated session.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUser(r.Context()); !ok {
			api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}
