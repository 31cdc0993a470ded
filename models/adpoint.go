// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AdpointCustomer is a customer record as returned by GET /Customers.
// Only the fields the gateway uses are decoded; everything else Adpoint
// sends is dropped during unmarshalling.
type AdpointCustomer struct {
	CustomerID    int64  `json:"CustomerID"`
	CustomerName  string `json:"CustomerName"`
	CustomerOwner string `json:"CustomerOwner"`
	Active        bool   `json:"Active"`
	LocalSegment  string `json:"LocalSegment"`
}

// AdpointContact is a contact record as returned by GET /Contacts.
type AdpointContact struct {
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

// ToContact projects the upstream record onto the public [Contact] shape.
func (c AdpointContact) ToContact() Contact {
	return Contact{
		ContactID:       c.ContactID,
		CustomerID:      c.CustomerID,
		LastName:        c.LastName,
		FirstName:       c.FirstName,
		MiddleName:      c.MiddleName,
		Position:        c.Position,
		Phone:           c.Phone,
		Mobile:          c.Mobile,
		Mail:            c.Mail,
		Active:          c.Active,
		ContactCategory: c.ContactCategory,
	}
}

// ToCustomerResult projects the upstream record onto [CustomerResult] and
// attaches contacts. A nil contacts slice is replaced with an empty one so
// the JSON output is always an array.
func (c AdpointCustomer) ToCustomerResult(contacts []Contact) CustomerResult {
	if contacts == nil {
		contacts = []Contact{}
	}

	return CustomerResult{
		CustomerID:    c.CustomerID,
		CustomerName:  c.CustomerName,
		CustomerOwner: c.CustomerOwner,
		Active:        c.Active,
		LocalSegment:  c.LocalSegment,
		Contacts:      contacts,
	}
}
