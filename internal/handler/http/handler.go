package http

import (
	"github.com/MKhiriev/order-gateway/internal/config"
	"github.com/MKhiriev/order-gateway/internal/limiter"
	"github.com/MKhiriev/order-gateway/internal/logger"
	"github.com/MKhiriev/order-gateway/internal/service"
)

type Handler struct {
	services *service.Services
	limiter  *limiter.Limiter
	cfg      *config.Config

	logger *logger.Logger
}

func NewHandler(services *service.Services, limiter *limiter.Limiter, cfg *config.Config, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		limiter:  limiter,
		cfg:      cfg,
		logger:   logger,
	}
}
