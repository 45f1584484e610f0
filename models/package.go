package models

import (
	"time"

	"gorm.io/gorm"
)

type PackageType string

const (
	PackageType1BHK PackageType = "1bhk"
	PackageType2BHK PackageType = "2bhk"
)

// Package is a full-home interior bundle (1BHK / 2BHK) sold at a single
// price with per-room inclusions.
type Package struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`
	Type        PackageType    `gorm:"type:VARCHAR(10)" json:"type"`
	Description string         `json:"description"`
	BasePrice   float64        `gorm:"not null" json:"base_price"`
	MRP         float64        `json:"mrp"`
	Discount    float64        `json:"discount"`
	Image       string         `json:"image"`
	Rooms       []PackageRoom  `gorm:"serializer:json" json:"rooms"`
	Inclusions  []string       `gorm:"serializer:json" json:"inclusions"`
	SEO         SEO            `gorm:"embedded;embeddedPrefix:seo_" json:"seo"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// PackageRoom is one room's scope inside a package.
type PackageRoom struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}
