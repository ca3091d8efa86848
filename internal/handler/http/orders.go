package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MKhiriev/order-gateway/internal/logger"
	"github.com/MKhiriev/order-gateway/internal/metrics"
	"github.com/MKhiriev/order-gateway/internal/utils"
	"github.com/MKhiriev/order-gateway/models"
)

// createOrder accepts an order for asynchronous processing.
//
// By the time this handler runs the request has passed auth and rate
// limiting. The body is validated against the order shape, the submission
// pipeline publishes the order and mints its polling handle, and the caller
// receives 202 with the handle; component errors are translated by
// [statusFromError].
func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var orderIn models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&orderIn); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "Invalid request body", http.StatusUnprocessableEntity)
		return
	}

	if err := orderIn.Validate(); err != nil {
		log.Err(err).Msg("order validation failed")
		writeError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	subject, ok := utils.GetSubjectFromContext(ctx)
	if !ok || subject == "" {
		// Unreachable behind the auth middleware; guarded anyway.
		log.Error().Msg("no subject in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	acceptance, err := h.services.Orders.Submit(ctx, orderIn, subject)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Int("status", status).Msg("order submission failed")
		writeError(w, detailFromError(err), status)
		return
	}

	log.Info().
		Str("order_id", acceptance.OrderID).
		Str("user_id", subject).
		Int64("amount", orderIn.Amount).
		Msg("order created")

	metrics.OrdersSubmittedTotal.Inc()

	utils.WriteJSON(w, models.OrderResponse{
		OrderID:     acceptance.OrderID,
		PollURL:     acceptance.PollURL,
		Status:      models.OrderStatusPending,
		RequestedAt: acceptance.RequestedAt.Format(time.RFC3339),
	}, http.StatusAccepted)
}
