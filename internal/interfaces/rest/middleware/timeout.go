package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/DanielPopoola/anet-transactions/internal/application"
)

var timeoutBody = `{"success":false,"error":{"code":"` + application.ErrCodeTimeout + `","message":"Request timeout"}}`

// Timeout bounds the whole request, gateway round trip included. The deadline
// reaches the gateway client through the request context.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		timeoutHandler := http.TimeoutHandler(next, timeout, timeoutBody)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			timeoutHandler.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
