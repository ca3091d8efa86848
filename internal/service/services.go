package service

import (
	"github.com/MKhiriev/order-gateway/internal/config"
	"github.com/MKhiriev/order-gateway/internal/logger"
	"github.com/MKhiriev/order-gateway/internal/queue"
	"github.com/MKhiriev/order-gateway/internal/store"
)

type Services struct {
	Auth   AuthService
	Orders OrderService
}

func NewServices(publisher queue.Publisher, minter store.HandleMinter, cfg *config.Config, logger *logger.Logger) (*Services, error) {
	auth, err := NewAuthService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		Auth:   auth,
		Orders: NewOrderService(publisher, minter, cfg, logger),
	}, nil
}
