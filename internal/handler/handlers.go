package handler

import (
	"github.com/MKhiriev/adpoint-gateway/internal/config"
	"github.com/MKhiriev/adpoint-gateway/internal/handler/http"
	"github.com/MKhiriev/adpoint-gateway/internal/logger"
	"github.com/MKhiriev/adpoint-gateway/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, gatherer prometheus.Gatherer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.Auth, gatherer, logger),
	}, nil
}
