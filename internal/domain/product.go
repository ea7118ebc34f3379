package domain

import (
	"time"
)

// Product represents a product in the catalog.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	BrandID     *string   `json:"brand_id,omitempty"`
	CategoryID  *string   `json:"category_id,omitempty"`
	Price       int64     `json:"price"`
	Currency    string    `json:"currency"`
	ImageURL    *string   `json:"image_url,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StoreStats holds the counters shown on the admin dashboard.
type StoreStats struct {
	TotalProducts  int `json:"total_products"`
	ActiveProducts int `json:"active_products"`
	Categories     int `json:"categories"`
	Brands         int `json:"brands"`
}
