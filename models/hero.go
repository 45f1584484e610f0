package models

import "time"

// HeroBanner is one slide of the storefront hero section.
type HeroBanner struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ImageURL  string    `gorm:"not null" json:"image_url"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	LinkURL   string    `json:"link_url"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}
