package models

import (
	"time"

	"github.com/kon1973/nexu-webshop-sub001/specs"
)

// StorefrontProductResponse is the thin listing row: just enough for a
// product card.
type StorefrontProductResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Image string  `json:"image"`
	Price float64 `json:"price"`
}

// StorefrontProductDetail is the full public product page payload.
type StorefrontProductDetail struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          float64         `json:"price"`
	Image          string          `json:"image"`
	CategoryName   string          `json:"category_name,omitempty"`
	Specifications specs.EntryList `json:"specifications"`
	Variants       VariantList     `json:"variants"`
	Views          int             `json:"views"`
	CreatedAt      time.Time       `json:"created_at"`
}
