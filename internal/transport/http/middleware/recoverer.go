package middleware

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"simgaji/internal/transport/http/api"
)

func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Any("panic", rec).
					Str("path", r.URL.Path).
					Str("requestId", GetRequestID(r.Context())).
					Msg("handler panicked")
				api.Fail(w, http.StatusInternalServerError, "internal_error", "internal server error", GetRequestID(r.Context()))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
