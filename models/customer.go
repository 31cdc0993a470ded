// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Contact is a single Adpoint contact person projected to the fields
// exposed by the gateway. JSON keys intentionally keep Adpoint's PascalCase.
type Contact struct {
	ContactID       int64  `json:"ContactID"`
	CustomerID      int64  `json:"CustomerID"`
	LastName        string `json:"LastName"`
	FirstName       string `json:"FirstName"`
	MiddleName      string `json:"MiddleName"`
	Position        string `json:"Position"`
	Phone           string `json:"Phone"`
	Mobile          string `json:"Mobile"`
	Mail            string `json:"Mail"`
	Active          bool   `json:"Active"`
	ContactCategory string `json:"ContactCategory"`
}

// CustomerResult is one matched Adpoint customer together with all of its
// contacts. Every element of Contacts has the same CustomerID as the result.
type CustomerResult struct {
	CustomerID    int64     `json:"CustomerID"`
	CustomerName  string    `json:"CustomerName"`
	CustomerOwner string    `json:"CustomerOwner"`
	Active        bool      `json:"Active"`
	LocalSegment  string    `json:"LocalSegment"`
	Contacts      []Contact `json:"contacts"`
}

// SearchRequest is the body of POST /search_adpoint_customer.
//
// CustomerName is a pointer so that an absent key can be told apart from an
// explicit empty string; the latter is forwarded to Adpoint as is.
type SearchRequest struct {
	CustomerName *string `json:"customerName"`
}

// Name returns the requested customer name or an empty string.
func (r SearchRequest) Name() string {
	if r.CustomerName == nil {
		return ""
	}
	return *r.CustomerName
}
