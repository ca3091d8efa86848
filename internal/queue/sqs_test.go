package queue

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/order-gateway/internal/logger"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSQSClient struct {
	sendFn func(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)

	inputs []*sqs.SendMessageInput
}

func (m *mockSQSClient) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	m.inputs = append(m.inputs, params)
	if m.sendFn != nil {
		return m.sendFn(ctx, params, optFns...)
	}
	return &sqs.SendMessageOutput{}, nil
}

func TestSQSPublisher_Publish_SendsFIFOKeys(t *testing.T) {
	client := &mockSQSClient{}
	publisher := NewSQSPublisher(client, "https://queue.example/orders.fifo", logger.Nop())

	err := publisher.Publish(context.Background(), Message{
		Body:    []byte(`{"order_id":"o1"}`),
		GroupID: "user123",
		DedupID: "o1",
	})
	require.NoError(t, err)

	require.Len(t, client.inputs, 1)
	input := client.inputs[0]
	assert.Equal(t, "https://queue.example/orders.fifo", *input.QueueUrl)
	assert.Equal(t, `{"order_id":"o1"}`, *input.MessageBody)
	assert.Equal(t, "user123", *input.MessageGroupId)
	assert.Equal(t, "o1", *input.MessageDeduplicationId)
}

func TestSQSPublisher_Publish_ErrorClassification(t *testing.T) {
	tests := []struct {
		name            string
		sendErr         error
		wantUnavailable bool
	}{
		{
			name: "service error is unavailable",
			sendErr: &smithy.GenericAPIError{
				Code:    "ServiceUnavailable",
				Message: "try again later",
			},
			wantUnavailable: true,
		},
		{
			name: "operation error is unavailable",
			sendErr: &smithy.OperationError{
				ServiceID:     "SQS",
				OperationName: "SendMessage",
				Err:           errors.New("dial tcp: connection refused"),
			},
			wantUnavailable: true,
		},
		{
			name:            "plain error stays unclassified",
			sendErr:         errors.New("boom"),
			wantUnavailable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockSQSClient{
				sendFn: func(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
					return nil, tt.sendErr
				},
			}
			publisher := NewSQSPublisher(client, "https://queue.example/orders.fifo", logger.Nop())

			err := publisher.Publish(context.Background(), Message{Body: []byte("{}"), GroupID: "u", DedupID: "o"})
			require.Error(t, err)
			assert.Equal(t, tt.wantUnavailable, errors.Is(err, ErrUnavailable))
		})
	}
}
