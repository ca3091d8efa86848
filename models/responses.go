package models

// OrderStatusPending is the only status an order can have at acceptance
// time; downstream processing moves it forward out of band.
const OrderStatusPending = "PENDING"

// OrderResponse is the 202 Accepted body of POST /orders.
type OrderResponse struct {
	// OrderID is the UUID assigned to this submission.
	OrderID string `json:"order_id"`

	// PollURL is the time-bounded signed URL the caller polls for the
	// order's eventual status record. Valid for 300 seconds; the record it
	// points at may not exist yet.
	PollURL string `json:"poll_url"`

	// Status is always "PENDING" at acceptance time.
	Status string `json:"status"`

	// RequestedAt is the ISO-8601 UTC timestamp of acceptance.
	RequestedAt string `json:"requested_at"`
}

// TokenResponse is the 200 OK body of POST /login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ErrorResponse is the body of every non-2xx response. Detail is a
// human-readable message; unexpected failures carry a generic text only,
// never internal error strings.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse is the 200 OK body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	Env    string `json:"env"`
}

// ReadyResponse is the 200 OK body of GET /ready.
type ReadyResponse struct {
	Status string `json:"status"`
}
