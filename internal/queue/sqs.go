package queue

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/order-gateway/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/smithy-go"
)

// sqsAPI is the narrow slice of the SQS client the publisher depends on.
// Tests substitute a fake; production wiring passes *sqs.Client.
type sqsAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSPublisher publishes order messages to an SQS FIFO queue.
type SQSPublisher struct {
	client   sqsAPI
	queueURL string
	logger   *logger.Logger
}

// NewSQSPublisher constructs a publisher bound to the given queue URL.
// The URL may be empty when the destination is not configured; the
// submission pipeline refuses to publish in that case before this adapter
// is ever invoked.
func NewSQSPublisher(client sqsAPI, queueURL string, logger *logger.Logger) *SQSPublisher {
	return &SQSPublisher{
		client:   client,
		queueURL: queueURL,
		logger:   logger,
	}
}

// Publish sends one message to the queue, carrying the grouping and
// deduplication keys of the FIFO contract.
//
// AWS service errors and transport failures wrap [ErrUnavailable]; anything
// else (e.g. a programming error surfaced by the SDK) is wrapped as-is so
// the caller classifies it as unexpected.
func (p *SQSPublisher) Publish(ctx context.Context, msg Message) error {
	_, err := p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:               aws.String(p.queueURL),
		MessageBody:            aws.String(string(msg.Body)),
		MessageGroupId:         aws.String(msg.GroupID),
		MessageDeduplicationId: aws.String(msg.DedupID),
	})
	if err != nil {
		var apiErr smithy.APIError
		var opErr *smithy.OperationError
		if errors.As(err, &apiErr) || errors.As(err, &opErr) {
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return fmt.Errorf("sending message to queue: %w", err)
	}

	return nil
}
