package http

import (
	"net"
	"net/http"

	"github.com/MKhiriev/order-gateway/internal/limiter"
	"github.com/MKhiriev/order-gateway/internal/logger"
	"github.com/MKhiriev/order-gateway/internal/metrics"
)

// rateLimit is an HTTP middleware that bounds the request rate per caller.
//
// It runs after auth and before the handler body; a rejection
// short-circuits with 429 and the order pipeline is never invoked, so a
// rate-limited request mutates no downstream state.
func (h *Handler) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := rateLimitKey(r)

		if !h.limiter.Allow(key) {
			logger.FromRequest(r).Warn().Str("key", key).Msg("rate limit exceeded")
			metrics.RateLimitedTotal.Inc()
			writeError(w, "Rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// rateLimitKey resolves the caller identity used for rate limiting.
//
// The caller's network address is preferred; when it cannot be determined
// every such caller falls back to [limiter.FallbackKey] and shares one
// bucket. Coarse, but the fallback is intentional.
func rateLimitKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		return limiter.FallbackKey
	}
	return host
}
