package http

import (
	"context"

	"github.com/MKhiriev/adpoint-gateway/internal/config"
	"github.com/MKhiriev/adpoint-gateway/internal/logger"
	"github.com/MKhiriev/adpoint-gateway/internal/service"
	"github.com/MKhiriev/adpoint-gateway/models"
)

const testAPIKey = "test-api-key"

// mockCustomerService implements service.CustomerService for testing.
type mockCustomerService struct {
	NotConfigured       bool
	SearchCustomersFunc func(ctx context.Context, req models.SearchRequest) ([]models.CustomerResult, error)

	calls    int
	received models.SearchRequest
}

func (m *mockCustomerService) Configured() bool {
	return !m.NotConfigured
}

func (m *mockCustomerService) SearchCustomers(ctx context.Context, req models.SearchRequest) ([]models.CustomerResult, error) {
	m.calls++
	m.received = req
	if m.SearchCustomersFunc != nil {
		return m.SearchCustomersFunc(ctx, req)
	}
	return []models.CustomerResult{}, nil
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	buildInfo models.AppBuildInfo
}

func (m *mockAppInfoService) GetAppBuildInfo(_ context.Context) models.AppBuildInfo {
	return m.buildInfo
}

// newTestHandler creates a Handler with nop logger, the test API key and the
// given customer service.
func newTestHandler(customers service.CustomerService) *Handler {
	if customers == nil {
		customers = &mockCustomerService{}
	}

	svcs := &service.Services{
		CustomerService: customers,
		AppInfoService:  &mockAppInfoService{buildInfo: models.NewAppBuildInfo("test-version", "", "")},
	}

	return NewHandler(svcs, config.Auth{APIKey: testAPIKey}, nil, logger.Nop())
}
