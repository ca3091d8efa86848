package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/order-gateway/internal/logger"
	"github.com/MKhiriev/order-gateway/internal/service"
	"github.com/MKhiriev/order-gateway/internal/utils"
	"github.com/MKhiriev/order-gateway/models"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, validates it via [service.AuthService.ParseToken], and — on
// success — stores the authenticated subject in the request context under
// [utils.SubjectCtxKey] before delegating to the next handler.
//
// Rejections follow the boundary contract:
//   - The "Authorization" header is absent entirely → 403.
//   - The header cannot be parsed as a bearer value, or the token is
//     invalid, expired, or lacks a subject → 401.
//
// The token error kinds are logged distinctly even though they all map to
// 401, using the context-scoped logger obtained via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, "Not authenticated", http.StatusForbidden)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeError(w, "Invalid authorization header", http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.Auth.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenExpired):
				log.Err(err).Msg("token expired")
			case errors.Is(err, service.ErrTokenMissingSubject):
				log.Err(err).Msg("token missing subject")
			default:
				log.Err(err).Msg("token invalid")
			}
			writeError(w, "Invalid or expired token", http.StatusUnauthorized)
			return
		}

		// Store the authenticated subject in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.SubjectCtxKey, token.Subject)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// writeError writes the uniform JSON failure body. The detail string is
// always a fixed human-readable message, never internal error text.
func writeError(w http.ResponseWriter, detail string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, statusCode)
}
