package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/order-gateway/internal/logger"
	"github.com/MKhiriev/order-gateway/internal/utils"
	"github.com/MKhiriev/order-gateway/models"
)

// login issues an identity token for the submitted user id.
//
// The request body reuses the order request shape; only user_id matters for
// issuance but the whole shape is validated so login and order submission
// reject malformed bodies identically.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var form models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "Invalid request body", http.StatusUnprocessableEntity)
		return
	}

	if err := form.Validate(); err != nil {
		log.Err(err).Msg("login form validation failed")
		writeError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	token, err := h.services.Auth.CreateToken(ctx, form.UserID)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Info().Str("user_id", form.UserID).Msg("token generated for user")

	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   "bearer",
	}, http.StatusOK)
}
