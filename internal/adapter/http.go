package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/adpoint-gateway/internal/config"
	"github.com/MKhiriev/adpoint-gateway/internal/logger"
	"github.com/MKhiriev/adpoint-gateway/internal/metrics"
	"github.com/MKhiriev/adpoint-gateway/internal/utils"
	"github.com/MKhiriev/adpoint-gateway/models"
	"github.com/go-resty/resty/v2"
	"github.com/xeipuuv/gojsonschema"
)

const (
	customersPath = "/Customers"
	contactsPath  = "/Contacts"

	customerNameParam = "query.customerName"
	customerIDParam   = "query.customerID"

	userAgent = "adpoint-gateway"
)

type httpAdpointAdapter struct {
	client     *utils.HTTPClient
	configured bool

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewHTTPAdpointAdapter constructs the resty implementation of
// [AdpointAdapter]. It normalises and validates cfg.BaseURL and configures
// the Basic Authorization credential and request timeout once for all calls.
//
// An empty cfg.AuthHeader is accepted; [AdpointAdapter.Configured] then
// reports false and every call fails with [ErrNotConfigured].
func NewHTTPAdpointAdapter(cfg config.Adpoint, m *metrics.Metrics, logger *logger.Logger) (AdpointAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adpoint base url: %w", err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL:   baseURL,
		Timeout:   cfg.RequestTimeout,
		UserAgent: userAgent,
	})
	client.SetLogger(restyLogger{logger: logger})

	// sent verbatim; SetAuthToken skips values made only of spaces
	credential := cfg.AuthHeader
	if credential != "" {
		client.SetHeader("Authorization", "Basic "+credential)
	}

	logger.Info().Str("base_url", baseURL).Bool("configured", credential != "").Msg("adpoint adapter created")

	return &httpAdpointAdapter{
		client:     client,
		configured: credential != "",
		metrics:    m,
		logger:     logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Configured implements [AdpointAdapter].
func (a *httpAdpointAdapter) Configured() bool {
	return a.configured
}

// ListCustomers implements [AdpointAdapter]. It calls
// GET /Customers?query.customerName=<customerName>.
func (a *httpAdpointAdapter) ListCustomers(ctx context.Context, customerName string) ([]models.AdpointCustomer, error) {
	var customers []models.AdpointCustomer
	err := a.get(ctx, customersPath, customerNameParam, customerName, customersSchema, &customers)
	if err != nil {
		return nil, err
	}

	return customers, nil
}

// ListContacts implements [AdpointAdapter]. It calls
// GET /Contacts?query.customerID=<customerID>.
func (a *httpAdpointAdapter) ListContacts(ctx context.Context, customerID int64) ([]models.AdpointContact, error) {
	var contacts []models.AdpointContact
	err := a.get(ctx, contactsPath, customerIDParam, strconv.FormatInt(customerID, 10), contactsSchema, &contacts)
	if err != nil {
		return nil, err
	}

	return contacts, nil
}

// get performs one GET with a single query parameter, validates the body
// against schema and decodes it into dst.
func (a *httpAdpointAdapter) get(ctx context.Context, path, param, value string, schema *gojsonschema.Schema, dst any) (err error) {
	if !a.configured {
		return ErrNotConfigured
	}

	log := logger.FromContext(ctx)
	op := http.MethodGet + " " + path
	start := time.Now()

	defer func() {
		a.metrics.ObserveUpstream(strings.ToLower(strings.TrimPrefix(path, "/")), time.Since(start).Seconds(), err)
	}()

	resp, err := a.request(ctx).
		SetQueryParam(param, value).
		Get(path)
	if err != nil {
		log.Err(err).Str("op", op).Msg("adpoint request failed")
		return &UpstreamError{Op: op, Err: err}
	}

	log.Debug().
		Str("op", op).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Int("size", len(resp.Body())).
		Msg("adpoint responded")

	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).Str("op", op).Str("body", truncate(resp.String(), 512)).Msg("adpoint returned an error status")
		return &UpstreamError{Op: op, Err: err}
	}

	if err = validatePayload(schema, resp.Body()); err != nil {
		log.Err(err).Str("op", op).Msg("adpoint payload does not match schema")
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("%s: %w: %v", op, ErrInvalidUpstreamPayload, err)
	}

	return nil
}

func (a *httpAdpointAdapter) request(ctx context.Context) *resty.Request {
	return a.client.R().SetContext(ctx)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
