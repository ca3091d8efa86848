package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/order-gateway/internal/service"
)

// errorStatusMap is the sole translation from component-level error kinds
// to HTTP status codes. Components below this layer never emit HTTP-shaped
// errors.
var errorStatusMap = map[error]int{
	service.ErrTokenInvalid:        http.StatusUnauthorized,
	service.ErrTokenExpired:        http.StatusUnauthorized,
	service.ErrTokenMissingSubject: http.StatusUnauthorized,

	service.ErrNotConfigured:    http.StatusServiceUnavailable,
	service.ErrQueueUnavailable: http.StatusBadGateway,
	service.ErrStoreUnavailable: http.StatusBadGateway,
	service.ErrInternal:         http.StatusInternalServerError,
}

// errorDetailMap holds the human-readable detail strings of classified
// failures. Unclassified errors fall through to a generic message so
// internal error text never reaches a response body.
var errorDetailMap = map[error]string{
	service.ErrNotConfigured:    "Submission destinations not configured",
	service.ErrQueueUnavailable: "Queue service unavailable",
	service.ErrStoreUnavailable: "Database service unavailable",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func detailFromError(err error) string {
	for target, detail := range errorDetailMap {
		if errors.Is(err, target) {
			return detail
		}
	}
	return http.StatusText(http.StatusInternalServerError)
}
