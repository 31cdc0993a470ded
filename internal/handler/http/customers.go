package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/adpoint-gateway/internal/logger"
	"github.com/MKhiriev/adpoint-gateway/internal/utils"
	"github.com/MKhiriev/adpoint-gateway/models"
)

// maxSearchBodySize caps the request body of POST /search_adpoint_customer.
const maxSearchBodySize = 1 << 20

// searchAdpointCustomer handles POST /search_adpoint_customer. The API key
// and the Adpoint credential have already been checked by withAPIKey and
// withAdpointConfigured.
func (h *Handler) searchAdpointCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	req, err := decodeSearchRequest(w, r)
	if err != nil {
		log.Err(err).Msg("invalid search request body")
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("customer_name", req.Name()).Msg("searching adpoint customers")

	results, err := h.services.CustomerService.SearchCustomers(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int("customers", len(results)).Msg("adpoint customers found")

	if _, err = utils.WriteJSON(w, results, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write search response")
	}
}

func decodeSearchRequest(w http.ResponseWriter, r *http.Request) (models.SearchRequest, error) {
	var req models.SearchRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSearchBodySize))
	if err := dec.Decode(&req); err != nil {
		return models.SearchRequest{}, fmt.Errorf("%w: %v", ErrInvalidRequestBody, err)
	}
	// only whitespace may follow the object
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return models.SearchRequest{}, fmt.Errorf("%w: trailing data after json object", ErrInvalidRequestBody)
	}
	if req.CustomerName == nil {
		return models.SearchRequest{}, ErrMissingCustomerName
	}

	return req, nil
}

// writeError logs err and answers with the status and body chosen by the
// error mapper.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, werr := utils.WriteJSON(w, bodyFromError(err), status); werr != nil {
		log.Err(werr).Msg("failed to write error response")
	}
}
