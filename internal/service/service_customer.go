// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/adpoint-gateway/internal/adapter"
	"github.com/MKhiriev/adpoint-gateway/internal/config"
	"github.com/MKhiriev/adpoint-gateway/internal/logger"
	"github.com/MKhiriev/adpoint-gateway/models"
	"golang.org/x/sync/errgroup"
)

type customerService struct {
	adpoint     adapter.AdpointAdapter
	concurrency int

	logger *logger.Logger
}

// NewCustomerService returns a [CustomerService] backed by adpoint. Contacts
// of different customers are fetched by at most cfg.ContactsConcurrency
// goroutines; values below 1 mean one at a time.
func NewCustomerService(adpoint adapter.AdpointAdapter, cfg config.Adpoint, logger *logger.Logger) CustomerService {
	concurrency := cfg.ContactsConcurrency
	if concurrency < 1 {
		concurrency = 1
	}

	return &customerService{
		adpoint:     adpoint,
		concurrency: concurrency,
		logger:      logger,
	}
}

func (s *customerService) Configured() bool {
	return s.adpoint.Configured()
}

func (s *customerService) SearchCustomers(ctx context.Context, req models.SearchRequest) ([]models.CustomerResult, error) {
	if !s.adpoint.Configured() {
		return nil, ErrAdpointNotConfigured
	}

	log := logger.FromContext(ctx)
	name := req.Name()

	customers, err := s.adpoint.ListCustomers(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	log.Debug().Str("customer_name", name).Int("customers", len(customers)).Msg("customers found")

	results := make([]models.CustomerResult, len(customers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, customer := range customers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			contacts, err := s.adpoint.ListContacts(gctx, customer.CustomerID)
			if err != nil {
				return fmt.Errorf("list contacts of customer %d: %w", customer.CustomerID, err)
			}

			projected := make([]models.Contact, len(contacts))
			for j, contact := range contacts {
				projected[j] = contact.ToContact()
			}

			results[i] = customer.ToCustomerResult(projected)
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
