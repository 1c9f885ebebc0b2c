package entity

import (
	"time"

	"github.com/google/uuid"
)

// LineItem is one vendor-bill line to resolve against the catalog.
type LineItem struct {
	VendorSKU   string `json:"vendor_sku"`
	Description string `json:"description"`
}

// Alternative is a ranked runner-up product suggestion.
type Alternative struct {
	ProductID  uuid.UUID `json:"product_id"`
	SKU        string    `json:"sku"`
	Name       string    `json:"name"`
	Confidence float64   `json:"confidence"`
}

// MatchResult is the outcome of resolving one line item. A miss is not an
// error: confidence 0 with ranked alternatives.
type MatchResult struct {
	MatchedSKU   string        `json:"matched_sku,omitempty"`
	ProductID    *uuid.UUID    `json:"product_id,omitempty"`
	AliasID      *uuid.UUID    `json:"alias_id,omitempty"`
	Confidence   float64       `json:"confidence"`
	Method       string        `json:"method"`
	Reason       string        `json:"reason"`
	Alternatives []Alternative `json:"alternatives,omitempty"`
}

// MatchHistory records one resolved (or user-corrected) line for the
// history tier of the cascade.
type MatchHistory struct {
	ID          uuid.UUID `json:"id"`
	TenantID    uuid.UUID `json:"tenant_id"`
	VendorID    uuid.UUID `json:"vendor_id"`
	ProductID   uuid.UUID `json:"product_id"`
	VendorSKU   string    `json:"vendor_sku"`
	Description string    `json:"description"`
	Method      string    `json:"method"`
	Confidence  float64   `json:"confidence"`
	Confirmed   bool      `json:"confirmed"`
	CreatedAt   time.Time `json:"created_at"`
}
