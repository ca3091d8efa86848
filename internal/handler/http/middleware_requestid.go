package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/order-gateway/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const requestIDHeader = "X-Request-ID"

// withRequestID assigns a correlation identifier to every inbound request.
//
// An inbound X-Request-ID is reused verbatim; otherwise a fresh UUID is
// generated. The identifier is stored in the request context, attached to a
// request-scoped child logger, and echoed on the response header before the
// next handler runs, so every outcome — including errors — carries it.
func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var requestID string
		if requestIDFromHeader := r.Header.Get(requestIDHeader); requestIDFromHeader != "" {
			requestID = requestIDFromHeader
		} else {
			requestID = uuid.NewString()
		}

		ctx = context.WithValue(ctx, utils.RequestIDCtxKey, requestID)

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}
