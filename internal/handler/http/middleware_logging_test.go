package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// injectLogger puts zerolog.Logger into request context the same way
// withTraceID middleware does (via zerolog/log.Ctx).
func injectLogger(r *http.Request, buf *bytes.Buffer) *http.Request {
	l := zerolog.New(buf).With().Timestamp().Logger()
	return r.WithContext(l.WithContext(r.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "POST 200",
			method:          http.MethodPost,
			path:            "/search_adpoint_customer",
			handlerStatus:   http.StatusOK,
			handlerResponse: "[]",
			checkLogContains: []string{
				`"level":"info"`,
				`"method":"POST"`,
				`"uri":"/search_adpoint_customer"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
			},
		},
		{
			name:            "401 is logged as warn",
			method:          http.MethodPost,
			path:            "/search_adpoint_customer",
			handlerStatus:   http.StatusUnauthorized,
			handlerResponse: `{"detail":"Invalid API Key"}`,
			checkLogContains: []string{
				`"level":"warn"`,
				`"status":401`,
				`"size":28`,
			},
		},
		{
			name:            "500 is logged as error",
			method:          http.MethodPost,
			path:            "/search_adpoint_customer",
			handlerStatus:   http.StatusInternalServerError,
			handlerResponse: `{"message":"Internal error"}`,
			checkLogContains: []string{
				`"level":"error"`,
				`"status":500`,
			},
		},
		{
			name:          "query string is part of uri",
			method:        http.MethodGet,
			path:          "/health?verbose=1",
			handlerStatus: http.StatusOK,
			checkLogContains: []string{
				`"uri":"/health?verbose=1"`,
				`"size":0`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTestHandler(nil)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte(tt.handlerResponse))
			})

			req := injectLogger(httptest.NewRequest(tt.method, tt.path, nil), &buf)
			rec := httptest.NewRecorder()

			h.withLogging(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.handlerStatus, rec.Code)
			for _, want := range tt.checkLogContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_NoStatusWritten(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := injectLogger(httptest.NewRequest(http.MethodGet, "/health", nil), &buf)
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"status":200`)
}

func TestWithLogging_NopLogger(t *testing.T) {
	h := newTestHandler(nil)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.withLogging(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccessLogLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, accessLogLevel(http.StatusOK))
	assert.Equal(t, zerolog.InfoLevel, accessLogLevel(http.StatusFound))
	assert.Equal(t, zerolog.WarnLevel, accessLogLevel(http.StatusNotFound))
	assert.Equal(t, zerolog.WarnLevel, accessLogLevel(http.StatusUnprocessableEntity))
	assert.Equal(t, zerolog.ErrorLevel, accessLogLevel(http.StatusInternalServerError))
	assert.Equal(t, zerolog.ErrorLevel, accessLogLevel(http.StatusBadGateway))
}
