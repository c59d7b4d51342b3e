package middleware

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts requests by mux pattern. It must wrap the ServeMux directly so
// the matched pattern is visible after routing.
func Metrics(reg prometheus.Registerer) func(http.Handler) http.Handler {
	requests := promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
		Namespace: "anet",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route and status.",
	}, []string{"method", "route", "status"})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			requests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		})
	}
}
