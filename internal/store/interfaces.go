// Package store defines the gateway's outbound port to the downstream
// status store and its DynamoDB-backed implementation.
//
// The gateway never reads or writes status records itself: the downstream
// processor owns the table. The only store operation the gateway performs is
// minting a time-bounded signed URL that callers use to poll a record
// independently of the gateway.
package store

import (
	"context"
	"time"
)

// HandleTTL is the fixed validity window of every polling handle. It is
// independent of the caller token's lifetime.
const HandleTTL = 300 * time.Second

// HandleMinter mints time-bounded polling handles for status records.
type HandleMinter interface {
	// MintPollingHandle returns a signed URL referencing the status record
	// for the given key. The referenced record may not exist yet; the URL
	// expires [HandleTTL] after issuance. Credential and signing failures
	// wrap [ErrUnavailable].
	MintPollingHandle(ctx context.Context, key string) (string, error)
}
