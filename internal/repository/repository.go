package repository

import (
	"context"
	"time"

	"github.com/TrioProject-10/Smart-Buy-Main/internal/domain"
)

// ReviewRepository defines the interface for review persistence operations.
type ReviewRepository interface {
	// Create inserts a new review into the store.
	Create(ctx context.Context, review *domain.Review) error

	// GetByID retrieves a review by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.Review, error)

	// ListByProductID returns all reviews for the given product key, newest first.
	ListByProductID(ctx context.Context, productID int64) ([]domain.Review, error)

	// ListByUserID returns all reviews written by the given user, newest first.
	ListByUserID(ctx context.Context, userID string) ([]domain.Review, error)

	// ListAll returns up to limit reviews joined with the reviewer's display
	// name, newest first.
	ListAll(ctx context.Context, limit int) ([]domain.ReviewWithAuthor, error)

	// Update modifies an existing review in the store.
	Update(ctx context.Context, review *domain.Review) error

	// Delete removes a review from the store by its identifier.
	Delete(ctx context.Context, id string) error

	// Summary returns the aggregate rating for the given product key.
	Summary(ctx context.Context, productID int64) (*domain.RatingSummary, error)
}

// ProductFilter defines filter criteria for listing products.
type ProductFilter struct {
	CategoryID *string
	BrandID    *string
	IsActive   *bool
	Search     *string
	MinPrice   *int64
	MaxPrice   *int64
	Page       int
	PerPage    int
}

// ProductRepository defines the interface for product persistence operations.
type ProductRepository interface {
	// Create inserts a new product into the store.
	Create(ctx context.Context, product *domain.Product) error

	// GetByID retrieves a product by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.Product, error)

	// GetBySlug retrieves a product by its URL-friendly slug.
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)

	// List returns products matching the given filter along with the total count.
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, int, error)

	// Update modifies an existing product in the store.
	Update(ctx context.Context, product *domain.Product) error

	// Delete removes a product from the store by its identifier.
	Delete(ctx context.Context, id string) error

	// Counts returns the total and active product counts.
	Counts(ctx context.Context) (total, active int, err error)
}

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create inserts a new category into the store.
	Create(ctx context.Context, category *domain.Category) error

	// GetByID retrieves a category by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.Category, error)

	// ListAll returns all categories ordered by sort order, then name.
	ListAll(ctx context.Context) ([]domain.Category, error)

	// Update modifies an existing category in the store.
	Update(ctx context.Context, category *domain.Category) error

	// Delete removes a category from the store by its identifier.
	Delete(ctx context.Context, id string) error

	// Count returns the number of categories.
	Count(ctx context.Context) (int, error)
}

// BrandRepository defines the interface for brand persistence operations.
type BrandRepository interface {
	// Create inserts a new brand into the store.
	Create(ctx context.Context, brand *domain.Brand) error

	// GetByID retrieves a brand by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.Brand, error)

	// ListAll returns all brands ordered by name.
	ListAll(ctx context.Context) ([]domain.Brand, error)

	// Update modifies an existing brand in the store.
	Update(ctx context.Context, brand *domain.Brand) error

	// Delete removes a brand from the store by its identifier.
	Delete(ctx context.Context, id string) error

	// Count returns the number of brands.
	Count(ctx context.Context) (int, error)
}

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create inserts a new user into the store.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique identifier.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update modifies an existing user in the store.
	Update(ctx context.Context, user *domain.User) error
}

// RefreshTokenRepository defines the interface for refresh token persistence operations.
type RefreshTokenRepository interface {
	// Create stores a new refresh token hash.
	Create(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error

	// GetByHash retrieves a refresh token record by its hash.
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)

	// Revoke revokes a specific refresh token by its hash.
	Revoke(ctx context.Context, tokenHash string) error

	// RevokeByUserID revokes all refresh tokens for the given user.
	RevokeByUserID(ctx context.Context, userID string) error
}
