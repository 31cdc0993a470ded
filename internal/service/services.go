package service

import (
	"github.com/MKhiriev/adpoint-gateway/internal/adapter"
	"github.com/MKhiriev/adpoint-gateway/internal/config"
	"github.com/MKhiriev/adpoint-gateway/internal/logger"
	"github.com/MKhiriev/adpoint-gateway/internal/metrics"
	"github.com/MKhiriev/adpoint-gateway/models"
)

type Services struct {
	CustomerService CustomerService
	AppInfoService  AppInfoService
}

func NewServices(adpoint adapter.AdpointAdapter, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, m *metrics.Metrics, logger *logger.Logger) *Services {
	customers := NewCustomerService(adpoint, cfg.Adpoint, logger)

	return &Services{
		CustomerService: NewCustomerMetricsService(m).Wrap(customers),
		AppInfoService:  NewAppInfoService(buildInfo, logger),
	}
}
