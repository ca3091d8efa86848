package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/order-gateway/internal/config"
	"github.com/MKhiriev/order-gateway/internal/logger"
	"github.com/MKhiriev/order-gateway/internal/utils"
	"github.com/MKhiriev/order-gateway/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It is a pure function of configuration and the wall clock: no state, no
// persistence, safe for concurrent use.
type authService struct {
	// tokenSignKey is the symmetric secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	tokenIssuer string

	// signingMethod is the HMAC algorithm resolved from configuration.
	signingMethod jwt.SigningMethod

	// tokenTTL controls how long a newly issued token remains valid.
	tokenTTL time.Duration

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService populated with the security
// parameters from cfg. Returns an error if the configured signing algorithm
// is outside the supported HMAC family.
func NewAuthService(cfg config.App, logger *logger.Logger) (AuthService, error) {
	method, err := utils.SigningMethodByName(cfg.TokenAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("resolving token signing method: %w", err)
	}

	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.Name,
		signingMethod: method,
		tokenTTL:      cfg.TokenTTL,
		logger:        logger,
	}, nil
}

// CreateToken issues a signed identity token for subject, expiring after the
// configured TTL.
func (a *authService) CreateToken(ctx context.Context, subject string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, subject, a.tokenTTL, a.tokenSignKey, a.signingMethod)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw token string.
//
// Failures are classified so the transport layer can log them distinctly:
//   - ErrTokenExpired for a well-formed token past its expiry;
//   - ErrTokenInvalid for any other signature/format failure;
//   - ErrTokenMissingSubject for a verified token with an empty subject.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.signingMethod)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenExpired
		}
		return models.Token{}, ErrTokenInvalid
	}

	if token.Subject == "" {
		return models.Token{}, ErrTokenMissingSubject
	}

	return token, nil
}
