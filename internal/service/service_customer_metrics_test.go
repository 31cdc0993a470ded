package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/adpoint-gateway/internal/metrics"
	"github.com/MKhiriev/adpoint-gateway/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCustomerService struct {
	configured bool
	results    []models.CustomerResult
	err        error
	calls      int
}

func (s *stubCustomerService) Configured() bool {
	return s.configured
}

func (s *stubCustomerService) SearchCustomers(_ context.Context, _ models.SearchRequest) ([]models.CustomerResult, error) {
	s.calls++
	return s.results, s.err
}

func TestCustomerMetricsService_Success(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	inner := &stubCustomerService{results: []models.CustomerResult{{CustomerID: 1}, {CustomerID: 2}}}

	svc := NewCustomerMetricsService(m).Wrap(inner)
	got, err := svc.SearchCustomers(context.Background(), searchFor("Acme"))

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 1, inner.calls)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Searches.WithLabelValues(metrics.OutcomeSuccess)), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.Searches.WithLabelValues(metrics.OutcomeError)), 0)
}

func TestCustomerMetricsService_Error(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	wantErr := errors.New("boom")
	inner := &stubCustomerService{err: wantErr}

	svc := NewCustomerMetricsService(m).Wrap(inner)
	got, err := svc.SearchCustomers(context.Background(), searchFor("Acme"))

	assert.Nil(t, got)
	assert.ErrorIs(t, err, wantErr)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Searches.WithLabelValues(metrics.OutcomeError)), 0)
}

func TestCustomerMetricsService_NilMetrics(t *testing.T) {
	inner := &stubCustomerService{}

	svc := NewCustomerMetricsService(nil).Wrap(inner)

	assert.NotPanics(t, func() {
		_, _ = svc.SearchCustomers(context.Background(), searchFor("Acme"))
	})
}

func TestCustomerMetricsService_ConfiguredDelegates(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	assert.True(t, NewCustomerMetricsService(m).Wrap(&stubCustomerService{configured: true}).Configured())
	assert.False(t, NewCustomerMetricsService(m).Wrap(&stubCustomerService{}).Configured())
}
