package http

import (
	"testing"

	"github.com/MKhiriev/adpoint-gateway/internal/config"
	"github.com/MKhiriev/adpoint-gateway/internal/logger"
	"github.com/MKhiriev/adpoint-gateway/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, config.Auth{}, nil, logger.Nop())

	require.NotNil(t, h)
}

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	reg := prometheus.NewRegistry()
	log := logger.Nop()

	h := NewHandler(svc, config.Auth{APIKey: "secret"}, reg, log)

	assert.Equal(t, svc, h.services)
	assert.Equal(t, "secret", h.apiKey)
	assert.Equal(t, reg, h.gatherer)
	assert.Equal(t, log, h.logger)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, config.Auth{}, nil, logger.Nop())
	h2 := NewHandler(&service.Services{}, config.Auth{}, nil, logger.Nop())

	assert.NotSame(t, h1, h2)
}
