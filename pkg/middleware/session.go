package middleware

import (
	"net/http"

	"github.com/shashiranjanraj/storefront/pkg/logger"
	"github.com/shashiranjanraj/storefront/pkg/response"
)

// SessionChecker reports whether a user is logged in on this device.
type SessionChecker interface {
	IsLoggedIn() (bool, error)
}

// RequireSession answers 401 unless a session is active.
func RequireSession(sessions SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, err := sessions.IsLoggedIn()
			if err != nil {
				logger.WithCtx(r.Context()).Error("session lookup failed", "error", err)
				response.ServerError(w)
				return
			}
			if !ok {
				response.Unauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
