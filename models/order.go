package models

import (
	"errors"
	"fmt"
	"time"
)

// Limits applied to the order request shape. The same shape doubles as the
// login form, so the bounds apply to both routes.
const (
	UserIDMinLength = 1
	UserIDMaxLength = 50
)

// Validation errors returned by [OrderRequest.Validate]. Callers can match
// against them with [errors.Is].
var (
	// ErrUserIDLength indicates that user_id is empty or longer than
	// [UserIDMaxLength] characters.
	ErrUserIDLength = fmt.Errorf("user_id must be between %d and %d characters", UserIDMinLength, UserIDMaxLength)

	// ErrAmountNotPositive indicates that amount is zero or negative.
	ErrAmountNotPositive = errors.New("amount must be a positive integer")
)

// OrderRequest is the inbound body of POST /orders (and, reusing the same
// shape, POST /login). It exists only for the duration of a single request.
type OrderRequest struct {
	// UserID identifies the ordering user. Length 1..50.
	UserID string `json:"user_id"`

	// Amount is the order amount in cents. Must be strictly positive.
	Amount int64 `json:"amount"`
}

// Validate checks the request against the shape invariants.
// Returns [ErrUserIDLength] or [ErrAmountNotPositive] on violation.
func (o OrderRequest) Validate() error {
	if len(o.UserID) < UserIDMinLength || len(o.UserID) > UserIDMaxLength {
		return ErrUserIDLength
	}

	if o.Amount <= 0 {
		return ErrAmountNotPositive
	}

	return nil
}

// OrderRecord is the message body published to the queue for one accepted
// order. Ownership of the record transfers to the queue; the gateway keeps
// no copy after a successful publish.
type OrderRecord struct {
	// OrderID is the freshly minted UUID of the submission. It doubles as
	// the queue deduplication key and the status-record key in the store.
	OrderID string `json:"order_id"`

	// UserID is the authenticated subject the order was submitted for.
	// It doubles as the queue grouping key, preserving per-user ordering.
	UserID string `json:"user_id"`

	// Amount is the order amount in cents, copied from the request.
	Amount int64 `json:"amount"`
}

// Acceptance is the outcome of a successful order submission: the order is
// published to the queue and a time-bounded polling handle has been minted
// for its eventual status record.
type Acceptance struct {
	// OrderID is the UUID minted for this submission.
	OrderID string

	// PollURL is the signed polling handle. Valid for 300 seconds after
	// issuance regardless of the caller token's lifetime.
	PollURL string

	// RequestedAt is the UTC instant the submission was accepted.
	RequestedAt time.Time
}
