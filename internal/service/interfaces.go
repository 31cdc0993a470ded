// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the gateway: combining Adpoint
// customer and contact listings into [models.CustomerResult] records.
package service

import (
	"context"

	"github.com/MKhiriev/adpoint-gateway/models"
)

// CustomerService searches Adpoint customers and attaches their contacts.
type CustomerService interface {
	// Configured reports whether the Adpoint credential is set. When it is
	// not, SearchCustomers fails with ErrAdpointNotConfigured for any input.
	Configured() bool

	// SearchCustomers returns every customer Adpoint matches for
	// req.CustomerName, each with all of its contacts. Customer order and
	// contact order follow Adpoint. Any failure aborts the whole search and
	// no partial result is returned.
	SearchCustomers(ctx context.Context, req models.SearchRequest) ([]models.CustomerResult, error)
}

type AppInfoService interface {
	GetAppBuildInfo(ctx context.Context) models.AppBuildInfo
}

// CustomerServiceWrapper defines middleware composition for CustomerService.
// Implementations wrap an existing CustomerService to add behavior such as
// metrics or logging.
type CustomerServiceWrapper interface {
	Wrap(CustomerService) CustomerService // returns a decorated CustomerService applying additional behavior
}
