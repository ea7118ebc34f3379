package domain

import (
	"time"
)

// Review represents a product review submitted by a user. ProductID is
// derived from the product name via DeriveProductID; the name itself is
// stored denormalized so a review stays readable even if the hash ever
// collides or the catalog entry disappears.
type Review struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ProductID   int64     `json:"product_id"`
	ProductName string    `json:"product_name"`
	Rating      int       `json:"rating"`
	ReviewText  string    `json:"review_text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ReviewWithAuthor is a review joined with the reviewer's display name,
// used by the public listing.
type ReviewWithAuthor struct {
	Review
	AuthorName string `json:"author_name"`
}

// RatingSummary contains aggregate review statistics for a product.
// A product with no reviews has an average of 0 and a count of 0.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}
