package http

import (
	"github.com/MKhiriev/adpoint-gateway/internal/config"
	"github.com/MKhiriev/adpoint-gateway/internal/logger"
	"github.com/MKhiriev/adpoint-gateway/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services
	apiKey   string
	gatherer prometheus.Gatherer

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. gatherer may be nil, in which case
// GET /metrics is not registered.
func NewHandler(services *service.Services, auth config.Auth, gatherer prometheus.Gatherer, logger *logger.Logger) *Handler {
	if auth.APIKey == "" {
		logger.Warn().Msg("X_API_KEY is empty, every search request will be rejected")
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		apiKey:   auth.APIKey,
		gatherer: gatherer,
		logger:   logger,
	}
}
