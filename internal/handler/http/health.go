package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/order-gateway/internal/logger"
	"github.com/MKhiriev/order-gateway/internal/utils"
	"github.com/MKhiriev/order-gateway/models"
)

// health reports process liveness. It succeeds regardless of configuration
// state; readiness is the stricter check.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		Status: "healthy",
		Env:    h.cfg.App.Environment,
	}, http.StatusOK)
}

// ready reports whether the gateway can accept orders. When the queue
// destination or the store table is unset it responds 503 and the body
// names exactly the missing configuration keys.
func (h *Handler) ready(w http.ResponseWriter, r *http.Request) {
	missing := h.cfg.MissingKeys()
	if len(missing) > 0 {
		logger.FromRequest(r).Warn().Strs("missing", missing).Msg("readiness check failed")
		writeError(w, "Service not ready: missing configuration for "+strings.Join(missing, ", "), http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.ReadyResponse{Status: "ready"}, http.StatusOK)
}
