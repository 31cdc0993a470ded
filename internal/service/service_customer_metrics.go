package service

import (
	"context"
	"time"

	"github.com/MKhiriev/adpoint-gateway/internal/metrics"
	"github.com/MKhiriev/adpoint-gateway/models"
)

// CustomerMetricsService records search outcome and duration around an inner
// CustomerService.
type CustomerMetricsService struct {
	inner   CustomerService
	metrics *metrics.Metrics
}

func NewCustomerMetricsService(m *metrics.Metrics) CustomerServiceWrapper {
	return &CustomerMetricsService{metrics: m}
}

func (c *CustomerMetricsService) Wrap(inner CustomerService) CustomerService {
	return &CustomerMetricsService{
		inner:   inner,
		metrics: c.metrics,
	}
}

func (c *CustomerMetricsService) Configured() bool {
	return c.inner.Configured()
}

func (c *CustomerMetricsService) SearchCustomers(ctx context.Context, req models.SearchRequest) ([]models.CustomerResult, error) {
	start := time.Now()

	results, err := c.inner.SearchCustomers(ctx, req)
	c.metrics.ObserveSearch(time.Since(start).Seconds(), len(results), err)

	return results, err
}
