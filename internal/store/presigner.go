package store

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/order-gateway/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
)

// unsignedPayload is the SigV4 payload hash placeholder for presigned GET
// requests that carry no body.
const unsignedPayload = "UNSIGNED-PAYLOAD"

// DynamoDBPresigner mints polling handles as SigV4-presigned GET URLs
// against the DynamoDB endpoint of the configured region.
//
// The URL encodes the table name and the order id of the status record plus
// the standard X-Amz-* signature parameters, with the expiry fixed at
// [HandleTTL]. The presigner performs no network I/O beyond credential
// retrieval; validity of the referenced record is not checked.
type DynamoDBPresigner struct {
	creds    aws.CredentialsProvider
	signer   *v4.Signer
	endpoint string
	region   string
	table    string
	logger   *logger.Logger

	// now is the signing-time source, swappable in tests.
	now func() time.Time
}

// NewDynamoDBPresigner constructs a presigner for the given table.
// endpointURL overrides the regional DynamoDB endpoint when non-empty
// (local testing); region selects the SigV4 signing scope.
func NewDynamoDBPresigner(creds aws.CredentialsProvider, table, region, endpointURL string, logger *logger.Logger) *DynamoDBPresigner {
	endpoint := endpointURL
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://dynamodb.%s.amazonaws.com", region)
	}

	return &DynamoDBPresigner{
		creds:    creds,
		signer:   v4.NewSigner(),
		endpoint: endpoint,
		region:   region,
		table:    table,
		logger:   logger,
		now:      time.Now,
	}
}

// MintPollingHandle presigns a GET request for the status record keyed by
// key in the configured table.
func (p *DynamoDBPresigner) MintPollingHandle(ctx context.Context, key string) (string, error) {
	creds, err := p.creds.Retrieve(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: retrieving credentials: %w", ErrUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("building presign request: %w", err)
	}

	q := req.URL.Query()
	q.Set("TableName", p.table)
	q.Set("Key", key)
	q.Set("X-Amz-Expires", strconv.Itoa(int(HandleTTL.Seconds())))
	req.URL.RawQuery = q.Encode()

	signedURL, _, err := p.signer.PresignHTTP(ctx, creds, req, unsignedPayload, "dynamodb", p.region, p.now())
	if err != nil {
		return "", fmt.Errorf("%w: presigning polling handle: %w", ErrUnavailable, err)
	}

	return signedURL, nil
}
