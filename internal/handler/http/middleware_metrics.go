package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/order-gateway/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// withMetrics records request counts and handling latency per route
// pattern. The chi route pattern is resolved after the handler runs so
// parametrized routes share one label value.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		pattern := chi.RouteContext(r.Context()).RoutePattern()
		if pattern == "" {
			pattern = r.URL.Path
		}

		metrics.RequestDuration.WithLabelValues(pattern, r.Method).Observe(time.Since(start).Seconds())
		metrics.RequestsTotal.WithLabelValues(pattern, r.Method, strconv.Itoa(lw.status)).Inc()
	})
}
