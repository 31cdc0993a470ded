// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the Adpoint web API.
//
// The primary abstraction is [AdpointAdapter], which decouples the service
// layer from the HTTP transport. The package ships a resty-based
// implementation ([NewHTTPAdpointAdapter]).
//
// Every failed call is returned as an [*UpstreamError] so callers can use
// [errors.Is] with [ErrUpstream] regardless of whether the failure was a
// transport error or a non-2xx status. Status codes are additionally mapped
// to sentinels such as [ErrUnauthorized] by mapHTTPError. Response bodies
// that do not match the expected schema yield [ErrInvalidUpstreamPayload],
// which is deliberately not an upstream error.
package adapter

import (
	"context"

	"github.com/MKhiriev/adpoint-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adpoint_adapter_mock.go -package=mock

// AdpointAdapter defines read access to the Adpoint customer and contact
// listings. Implementations never retry.
type AdpointAdapter interface {
	// Configured reports whether an Authorization credential is available.
	// Callers must not issue requests when it returns false.
	Configured() bool

	// ListCustomers returns the customers Adpoint matches for customerName,
	// in upstream order. customerName is sent as is in the
	// query.customerName parameter; matching semantics belong to Adpoint.
	ListCustomers(ctx context.Context, customerName string) ([]models.AdpointCustomer, error)

	// ListContacts returns the contacts of the customer with customerID, in
	// upstream order.
	ListContacts(ctx context.Context, customerID int64) ([]models.AdpointContact, error)
}
