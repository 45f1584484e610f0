package models

import (
	"time"

	"gorm.io/gorm"
)

type ProductType string

const (
	ProductTypeKitchen  ProductType = "kitchen"
	ProductTypeWardrobe ProductType = "wardrobe"
)

// Product is a configurable catalog item (modular kitchen, wardrobe). The
// domain-specific catalogs (layouts, materials, appliances, features) are
// small enumerable lists entered through the admin form and stored as JSON
// columns; the variant matrix maps option combinations to price deltas.
type Product struct {
	ID          uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string           `gorm:"not null" json:"name"`
	Slug        string           `gorm:"uniqueIndex;not null" json:"slug"`
	Type        ProductType      `gorm:"type:VARCHAR(20)" json:"type"`
	CategoryID  uint             `gorm:"index" json:"category_id"`
	Category    Category         `gorm:"foreignKey:CategoryID" json:"category"`
	Description string           `json:"description"`
	BasePrice   float64          `gorm:"not null" json:"base_price"`
	MRP         float64          `json:"mrp"`
	Discount    float64          `json:"discount"` // percent off MRP
	Image       string           `json:"image"`
	Gallery     []string         `gorm:"serializer:json" json:"gallery"`
	Layouts     []string         `gorm:"serializer:json" json:"layouts"`
	Materials   []string         `gorm:"serializer:json" json:"materials"`
	Appliances  []string         `gorm:"serializer:json" json:"appliances"`
	Features    []string         `gorm:"serializer:json" json:"features"`
	Variants    []ProductVariant `gorm:"serializer:json" json:"variants"`
	SEO         SEO              `gorm:"embedded;embeddedPrefix:seo_" json:"seo"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`
}

// ProductVariant is one cell of the variant matrix: a combination of option
// selections and the price it resolves to.
type ProductVariant struct {
	Options map[string]string `json:"options"`
	Price   float64           `json:"price"`
}
