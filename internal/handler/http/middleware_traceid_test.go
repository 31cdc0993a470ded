package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/adpoint-gateway/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeWithTraceID(h *Handler, incoming string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}

	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)
	return rec, captured
}

func TestWithTraceID_TableTest(t *testing.T) {
	tests := []struct {
		name            string
		requestTraceID  string
		wantSameTraceID bool
	}{
		{name: "trace ID from request header is reused", requestTraceID: "my-custom-trace-id", wantSameTraceID: true},
		{name: "UUID from request header is reused", requestTraceID: "550e8400-e29b-41d4-a716-446655440000", wantSameTraceID: true},
		{name: "no trace ID in request, UUID generated", requestTraceID: ""},
		{name: "oversized trace ID is replaced", requestTraceID: strings.Repeat("a", maxTraceIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, captured := executeWithTraceID(newTestHandler(nil), tt.requestTraceID)

			require.NotNil(t, captured, "next handler must be called")
			got := rec.Header().Get(traceIDHeader)

			if tt.wantSameTraceID {
				assert.Equal(t, tt.requestTraceID, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err, "generated trace ID must be a UUID")
		})
	}
}

func TestWithTraceID_GeneratesUniqueUUIDs(t *testing.T) {
	h := newTestHandler(nil)
	seen := make(map[string]struct{})

	for range 100 {
		rec, _ := executeWithTraceID(h, "")
		id := rec.Header().Get(traceIDHeader)
		_, dup := seen[id]
		require.False(t, dup, "duplicate trace ID %s", id)
		seen[id] = struct{}{}
	}
}

func TestWithTraceID_TraceIDInContextLogger(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside handler")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-abc")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"trace-abc"`)
	assert.Contains(t, buf.String(), `"message":"inside handler"`)
}

func TestWithTraceID_ParentLoggerNotMutated(t *testing.T) {
	var buf bytes.Buffer
	parent := &logger.Logger{Logger: zerolog.New(&buf)}
	h := &Handler{logger: parent}

	_, _ = executeWithTraceID(h, "trace-1")
	parent.Info().Msg("parent")

	assert.NotContains(t, buf.String(), "trace-1")
}

func TestWithTraceID_ConcurrentRequests(t *testing.T) {
	h := newTestHandler(nil)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := uuid.NewString()
			rec, _ := executeWithTraceID(h, id)
			assert.Equal(t, id, rec.Header().Get(traceIDHeader), "request %d", i)
		}()
	}
	wg.Wait()
}
