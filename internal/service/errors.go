package service

import "errors"

var (
	// ErrTokenCreationFailed indicates that signing a new identity token
	// failed.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenInvalid indicates a malformed token or a signature that does
	// not verify against the configured key.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrTokenExpired indicates a well-formed token past its expiry.
	ErrTokenExpired = errors.New("token is expired")
	// ErrTokenMissingSubject indicates a verified token whose payload lacks
	// a subject; such a token authorizes nothing.
	ErrTokenMissingSubject = errors.New("token is missing subject")

	// ErrNotConfigured indicates that the queue destination or the store
	// table is not configured. Raised before any network call because
	// neither misconfiguration is retriable by the caller.
	ErrNotConfigured = errors.New("submission destinations not configured")
	// ErrQueueUnavailable indicates a transport or service failure while
	// publishing to the queue.
	ErrQueueUnavailable = errors.New("queue unavailable")
	// ErrStoreUnavailable indicates a failure while minting the polling
	// handle against the status store.
	ErrStoreUnavailable = errors.New("status store unavailable")
	// ErrInternal indicates an unexpected failure in the submission
	// pipeline that fits none of the classified kinds.
	ErrInternal = errors.New("internal submission error")
)
