package service

import (
	"context"

	"github.com/MKhiriev/order-gateway/models"
)

// AuthService owns the identity token lifecycle: issuance at login and
// validation on every protected request.
type AuthService interface {
	// CreateToken issues a signed identity token for the given subject.
	// Repeated calls for the same subject yield different tokens because
	// the expiry instant differs.
	CreateToken(ctx context.Context, subject string) (models.Token, error)

	// ParseToken verifies the signature and expiry of a raw token string
	// and extracts its subject. Failures are classified into
	// [ErrTokenInvalid], [ErrTokenExpired] and [ErrTokenMissingSubject] so
	// the transport layer can log them distinctly; all three are
	// unauthenticated at the boundary.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// OrderService turns a validated order request into a queue publication and
// a time-bounded polling handle.
type OrderService interface {
	// Submit publishes the order for userID and mints its polling handle.
	// See the package errors for the failure classification; Submit never
	// retries on its own, and a successful publish followed by a handle
	// failure leaves the order enqueued (at-least-once).
	Submit(ctx context.Context, req models.OrderRequest, userID string) (models.Acceptance, error)
}
