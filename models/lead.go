package models

import "time"

// Lead is a storefront inquiry. The product snapshot is denormalized at
// capture time so later catalog edits do not rewrite history. Leads are
// read-only in the admin API.
type Lead struct {
	ID        string           `gorm:"primaryKey" json:"id"` // uuid
	Name      string           `gorm:"not null" json:"name"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone"`
	Message   string           `json:"message"`
	Source    string           `json:"source"` // e.g. "product_page", "contact_form"
	Product   *ProductSnapshot `gorm:"serializer:json" json:"product,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// ProductSnapshot is the denormalized copy of the product a lead asked about.
type ProductSnapshot struct {
	Name      string  `json:"name"`
	Slug      string  `json:"slug"`
	BasePrice float64 `json:"base_price"`
	Image     string  `json:"image"`
}
