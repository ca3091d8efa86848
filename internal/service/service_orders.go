package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/order-gateway/internal/config"
	"github.com/MKhiriev/order-gateway/internal/logger"
	"github.com/MKhiriev/order-gateway/internal/queue"
	"github.com/MKhiriev/order-gateway/internal/store"
	"github.com/MKhiriev/order-gateway/internal/utils"
	"github.com/MKhiriev/order-gateway/models"
)

// orderService is the concrete implementation of OrderService.
//
// The pipeline is a linear protocol: mint id → check destinations →
// publish → mint handle. It performs no local persistence and no automatic
// retries; durability is delegated to the queue and retry policy to the
// caller.
type orderService struct {
	publisher queue.Publisher
	minter    store.HandleMinter

	// queueURL and storeTable are checked before any network call; an
	// unset destination fails fast with ErrNotConfigured.
	queueURL   string
	storeTable string

	ids *utils.UUIDGenerator

	logger *logger.Logger
}

// NewOrderService constructs an OrderService wired to the given queue
// publisher and handle minter.
func NewOrderService(publisher queue.Publisher, minter store.HandleMinter, cfg *config.Config, logger *logger.Logger) OrderService {
	return &orderService{
		publisher:  publisher,
		minter:     minter,
		queueURL:   cfg.Queue.URL,
		storeTable: cfg.Store.Table,
		ids:        utils.NewUUIDGenerator(),
		logger:     logger,
	}
}

// Submit publishes the order for userID and mints its polling handle.
//
// A fresh order id is minted on every call, including caller-level retries,
// so a resubmitted order is a new order as far as queue deduplication is
// concerned.
func (s *orderService) Submit(ctx context.Context, req models.OrderRequest, userID string) (models.Acceptance, error) {
	log := logger.FromContext(ctx)

	orderID := s.ids.Generate()
	requestedAt := time.Now().UTC()

	if s.queueURL == "" || s.storeTable == "" {
		log.Error().Str("order_id", orderID).Msg("submission destinations not configured")
		return models.Acceptance{}, ErrNotConfigured
	}

	body, err := json.Marshal(models.OrderRecord{
		OrderID: orderID,
		UserID:  userID,
		Amount:  req.Amount,
	})
	if err != nil {
		log.Err(err).Str("order_id", orderID).Msg("marshaling order record failed")
		return models.Acceptance{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	publication := queue.Message{
		Body:    body,
		GroupID: userID,
		DedupID: orderID,
	}
	if err := s.publisher.Publish(ctx, publication); err != nil {
		if errors.Is(err, queue.ErrUnavailable) {
			log.Err(err).Str("order_id", orderID).Str("user_id", userID).Msg("queue unavailable")
			return models.Acceptance{}, ErrQueueUnavailable
		}
		log.Err(err).Str("order_id", orderID).Str("user_id", userID).Msg("unexpected publish failure")
		return models.Acceptance{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	log.Info().
		Str("order_id", orderID).
		Str("user_id", userID).
		Int64("amount", req.Amount).
		Msg("order sent to queue")

	pollURL, err := s.minter.MintPollingHandle(ctx, orderID)
	if err != nil {
		// The order is already enqueued at this point; the caller gets the
		// failure and may poll nothing. Accepted at-least-once tradeoff.
		if errors.Is(err, store.ErrUnavailable) {
			log.Err(err).Str("order_id", orderID).Msg("status store unavailable after publish")
			return models.Acceptance{}, ErrStoreUnavailable
		}
		log.Err(err).Str("order_id", orderID).Msg("unexpected handle failure after publish")
		return models.Acceptance{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	log.Debug().Str("order_id", orderID).Msg("polling handle minted")

	return models.Acceptance{
		OrderID:     orderID,
		PollURL:     pollURL,
		RequestedAt: requestedAt,
	}, nil
}
