package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/order-gateway/internal/config"
	"github.com/MKhiriev/order-gateway/internal/logger"
	"github.com/MKhiriev/order-gateway/internal/queue"
	"github.com/MKhiriev/order-gateway/internal/store"
	"github.com/MKhiriev/order-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: queue.Publisher
// ─────────────────────────────────────────────

type mockPublisher struct {
	publishFn func(ctx context.Context, msg queue.Message) error

	published []queue.Message
}

func (m *mockPublisher) Publish(ctx context.Context, msg queue.Message) error {
	m.published = append(m.published, msg)
	if m.publishFn != nil {
		return m.publishFn(ctx, msg)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.HandleMinter
// ─────────────────────────────────────────────

type mockMinter struct {
	mintFn func(ctx context.Context, key string) (string, error)

	mintedKeys []string
}

func (m *mockMinter) MintPollingHandle(ctx context.Context, key string) (string, error) {
	m.mintedKeys = append(m.mintedKeys, key)
	if m.mintFn != nil {
		return m.mintFn(ctx, key)
	}
	return "https://store.example/poll/" + key, nil
}

func testOrderConfig() *config.Config {
	return &config.Config{
		Queue: config.Queue{URL: "https://queue.example/orders.fifo"},
		Store: config.Store{Table: "orders"},
	}
}

func newTestOrderService(cfg *config.Config, publisher queue.Publisher, minter store.HandleMinter) OrderService {
	return NewOrderService(publisher, minter, cfg, logger.Nop())
}

func TestOrderService_Submit_Success(t *testing.T) {
	publisher := &mockPublisher{}
	minter := &mockMinter{}
	svc := newTestOrderService(testOrderConfig(), publisher, minter)

	req := models.OrderRequest{UserID: "user123", Amount: 500}
	acceptance, err := svc.Submit(context.Background(), req, "user123")
	require.NoError(t, err)

	assert.NotEmpty(t, acceptance.OrderID)
	assert.Equal(t, "https://store.example/poll/"+acceptance.OrderID, acceptance.PollURL)
	assert.WithinDuration(t, time.Now().UTC(), acceptance.RequestedAt, 5*time.Second)

	// the publication carries the record with grouping and dedup keys
	require.Len(t, publisher.published, 1)
	msg := publisher.published[0]
	assert.Equal(t, "user123", msg.GroupID)
	assert.Equal(t, acceptance.OrderID, msg.DedupID)

	var record models.OrderRecord
	require.NoError(t, json.Unmarshal(msg.Body, &record))
	assert.Equal(t, models.OrderRecord{
		OrderID: acceptance.OrderID,
		UserID:  "user123",
		Amount:  500,
	}, record)

	// the handle is minted for the same order id
	assert.Equal(t, []string{acceptance.OrderID}, minter.mintedKeys)
}

func TestOrderService_Submit_OrderIDsAreDistinct(t *testing.T) {
	svc := newTestOrderService(testOrderConfig(), &mockPublisher{}, &mockMinter{})
	req := models.OrderRequest{UserID: "user123", Amount: 1}

	seen := make(map[string]bool)
	for range 100 {
		acceptance, err := svc.Submit(context.Background(), req, "user123")
		require.NoError(t, err)
		assert.False(t, seen[acceptance.OrderID], "order id repeated: %s", acceptance.OrderID)
		seen[acceptance.OrderID] = true
	}
}

func TestOrderService_Submit_NotConfigured_TableTest(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{
			name: "queue URL missing",
			cfg: &config.Config{
				Store: config.Store{Table: "orders"},
			},
		},
		{
			name: "store table missing",
			cfg: &config.Config{
				Queue: config.Queue{URL: "https://queue.example/orders.fifo"},
			},
		},
		{
			name: "both missing",
			cfg:  &config.Config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher := &mockPublisher{}
			minter := &mockMinter{}
			svc := newTestOrderService(tt.cfg, publisher, minter)

			_, err := svc.Submit(context.Background(), models.OrderRequest{UserID: "u", Amount: 1}, "u")
			assert.ErrorIs(t, err, ErrNotConfigured)

			// the failure happens before any network call
			assert.Empty(t, publisher.published)
			assert.Empty(t, minter.mintedKeys)
		})
	}
}

func TestOrderService_Submit_PublishFailureClassification(t *testing.T) {
	tests := []struct {
		name       string
		publishErr error
		wantErr    error
	}{
		{
			name:       "transport failure",
			publishErr: fmt.Errorf("send: %w", queue.ErrUnavailable),
			wantErr:    ErrQueueUnavailable,
		},
		{
			name:       "unexpected failure",
			publishErr: errors.New("boom"),
			wantErr:    ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher := &mockPublisher{
				publishFn: func(ctx context.Context, msg queue.Message) error {
					return tt.publishErr
				},
			}
			minter := &mockMinter{}
			svc := newTestOrderService(testOrderConfig(), publisher, minter)

			_, err := svc.Submit(context.Background(), models.OrderRequest{UserID: "u", Amount: 1}, "u")
			assert.ErrorIs(t, err, tt.wantErr)

			// the handle is never minted when the publish fails
			assert.Empty(t, minter.mintedKeys)
		})
	}
}

func TestOrderService_Submit_MintFailureClassification(t *testing.T) {
	tests := []struct {
		name    string
		mintErr error
		wantErr error
	}{
		{
			name:    "store unavailable",
			mintErr: fmt.Errorf("presign: %w", store.ErrUnavailable),
			wantErr: ErrStoreUnavailable,
		},
		{
			name:    "unexpected failure",
			mintErr: errors.New("boom"),
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher := &mockPublisher{}
			minter := &mockMinter{
				mintFn: func(ctx context.Context, key string) (string, error) {
					return "", tt.mintErr
				},
			}
			svc := newTestOrderService(testOrderConfig(), publisher, minter)

			_, err := svc.Submit(context.Background(), models.OrderRequest{UserID: "u", Amount: 1}, "u")
			assert.ErrorIs(t, err, tt.wantErr)

			// the publish already happened; accepted partial effect
			assert.Len(t, publisher.published, 1)
		})
	}
}
