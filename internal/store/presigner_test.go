package store

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/MKhiriev/order-gateway/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPresigner(endpointURL string) *DynamoDBPresigner {
	creds := credentials.NewStaticCredentialsProvider("test", "test", "")
	return NewDynamoDBPresigner(creds, "orders", "us-east-1", endpointURL, logger.Nop())
}

func TestDynamoDBPresigner_MintPollingHandle(t *testing.T) {
	presigner := newTestPresigner("")

	signedURL, err := presigner.MintPollingHandle(context.Background(), "order-abc")
	require.NoError(t, err)

	parsed, err := url.Parse(signedURL)
	require.NoError(t, err)

	assert.Equal(t, "https", parsed.Scheme)
	assert.Equal(t, "dynamodb.us-east-1.amazonaws.com", parsed.Host)

	q := parsed.Query()
	assert.Equal(t, "orders", q.Get("TableName"))
	assert.Equal(t, "order-abc", q.Get("Key"))
	assert.Equal(t, "300", q.Get("X-Amz-Expires"))
	assert.NotEmpty(t, q.Get("X-Amz-Signature"))
	assert.NotEmpty(t, q.Get("X-Amz-Credential"))
}

func TestDynamoDBPresigner_MintPollingHandle_EndpointOverride(t *testing.T) {
	presigner := newTestPresigner("http://localhost:4566")

	signedURL, err := presigner.MintPollingHandle(context.Background(), "order-abc")
	require.NoError(t, err)

	parsed, err := url.Parse(signedURL)
	require.NoError(t, err)
	assert.Equal(t, "localhost:4566", parsed.Host)
}

func TestDynamoDBPresigner_MintPollingHandle_DeterministicPerInstant(t *testing.T) {
	// two handles for the same key signed at the same instant are identical;
	// the signature depends only on the request and the signing time
	presigner := newTestPresigner("")
	instant := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	presigner.now = func() time.Time { return instant }

	first, err := presigner.MintPollingHandle(context.Background(), "order-abc")
	require.NoError(t, err)
	second, err := presigner.MintPollingHandle(context.Background(), "order-abc")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDynamoDBPresigner_MintPollingHandle_CredentialFailure(t *testing.T) {
	badCreds := aws.CredentialsProviderFunc(func(ctx context.Context) (aws.Credentials, error) {
		return aws.Credentials{}, assert.AnError
	})
	presigner := NewDynamoDBPresigner(badCreds, "orders", "us-east-1", "", logger.Nop())

	_, err := presigner.MintPollingHandle(context.Background(), "order-abc")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHandleTTLIsFixed(t *testing.T) {
	// the polling-handle validity window is part of the external contract
	assert.Equal(t, 300*time.Second, HandleTTL)
}
