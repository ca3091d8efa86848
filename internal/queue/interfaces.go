// Package queue defines the gateway's outbound port to the order queue and
// its SQS-backed implementation.
//
// The gateway treats the queue as an opaque collaborator: it publishes one
// message per accepted order and never reads anything back. Durability of
// accepted orders is delegated entirely to the queue.
package queue

import "context"

// Message is one order publication.
type Message struct {
	// Body is the serialized order record.
	Body []byte

	// GroupID is the ordering key: messages sharing a group are delivered
	// in publish order. The pipeline uses the user id here so one user's
	// orders stay ordered without serializing unrelated users.
	GroupID string

	// DedupID is the deduplication key: a retried publish of the same
	// order is suppressed by the queue within its dedup window. The
	// pipeline uses the order id here.
	DedupID string
}

// Publisher publishes order messages to the configured destination.
type Publisher interface {
	// Publish sends msg to the queue. Transport and service failures wrap
	// [ErrUnavailable]; any other failure is passed through as-is.
	Publish(ctx context.Context, msg Message) error
}
