package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"

	apperrors "github.com/TrioProject-10/Smart-Buy-Main/pkg/errors"
	"github.com/TrioProject-10/Smart-Buy-Main/internal/domain"
	"github.com/TrioProject-10/Smart-Buy-Main/pkg/database"
)

// ReviewRepository implements repository.ReviewRepository using PostgreSQL.
type ReviewRepository struct {
	pool database.DBTX
}

// NewReviewRepository creates a new PostgreSQL-backed review repository.
func NewReviewRepository(pool database.DBTX) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

// Create inserts a new review into the database.
func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, product_id, product_name, rating, review_text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		rv.ID,
		rv.UserID,
		rv.ProductID,
		rv.ProductName,
		rv.Rating,
		rv.ReviewText,
		rv.CreatedAt,
		rv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}

	return nil
}

// GetByID retrieves a review by its ID.
func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	query := `
		SELECT id, user_id, product_id, product_name, rating, review_text, created_at, updated_at
		FROM reviews
		WHERE id = $1`

	var rv domain.Review
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rv.ID,
		&rv.UserID,
		&rv.ProductID,
		&rv.ProductName,
		&rv.Rating,
		&rv.ReviewText,
		&rv.CreatedAt,
		&rv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan review: %w", err)
	}

	return &rv, nil
}

// ListByProductID returns all reviews for the given product key, newest first.
func (r *ReviewRepository) ListByProductID(ctx context.Context, productID int64) ([]domain.Review, error) {
	query := `
		SELECT id, user_id, product_id, product_name, rating, review_text, created_at, updated_at
		FROM reviews
		WHERE product_id = $1
		ORDER BY created_at DESC`

	return r.listReviews(ctx, query, productID)
}

// ListByUserID returns all reviews written by the given user, newest first.
func (r *ReviewRepository) ListByUserID(ctx context.Context, userID string) ([]domain.Review, error) {
	query := `
		SELECT id, user_id, product_id, product_name, rating, review_text, created_at, updated_at
		FROM reviews
		WHERE user_id = $1
		ORDER BY created_at DESC`

	return r.listReviews(ctx, query, userID)
}

// ListAll returns up to limit reviews joined with the reviewer's full name,
// newest first.
func (r *ReviewRepository) ListAll(ctx context.Context, limit int) ([]domain.ReviewWithAuthor, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT r.id, r.user_id, r.product_id, r.product_name, r.rating, r.review_text, r.created_at, r.updated_at,
		       u.full_name
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		ORDER BY r.created_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list all reviews: %w", err)
	}
	defer rows.Close()

	var reviews []domain.ReviewWithAuthor
	for rows.Next() {
		var rv domain.ReviewWithAuthor
		if err := rows.Scan(
			&rv.ID,
			&rv.UserID,
			&rv.ProductID,
			&rv.ProductName,
			&rv.Rating,
			&rv.ReviewText,
			&rv.CreatedAt,
			&rv.UpdatedAt,
			&rv.AuthorName,
		); err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, rv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	if reviews == nil {
		reviews = []domain.ReviewWithAuthor{}
	}

	return reviews, nil
}

// Update modifies the rating and text of an existing review.
func (r *ReviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	rv.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE reviews
		SET rating = $1, review_text = $2, updated_at = $3
		WHERE id = $4`

	ct, err := r.pool.Exec(ctx, query,
		rv.Rating,
		rv.ReviewText,
		rv.UpdatedAt,
		rv.ID,
	)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("review", rv.ID)
	}

	return nil
}

// Delete removes a review from the database by its ID.
func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM reviews WHERE id = $1`

	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("review", id)
	}

	return nil
}

// Summary returns the aggregate rating for the given product key. COALESCE
// keeps the average at 0 for products with no reviews.
func (r *ReviewRepository) Summary(ctx context.Context, productID int64) (*domain.RatingSummary, error) {
	query := `
		SELECT COALESCE(AVG(rating), 0), COUNT(*)
		FROM reviews
		WHERE product_id = $1`

	var summary domain.RatingSummary
	err := r.pool.QueryRow(ctx, query, productID).Scan(
		&summary.Average,
		&summary.Count,
	)
	if err != nil {
		return nil, fmt.Errorf("get rating summary: %w", err)
	}

	// Round average rating to one decimal place.
	summary.Average = math.Round(summary.Average*10) / 10

	return &summary, nil
}

// listReviews executes a query returning review rows and scans them.
func (r *ReviewRepository) listReviews(ctx context.Context, query string, args ...any) ([]domain.Review, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(
			&rv.ID,
			&rv.UserID,
			&rv.ProductID,
			&rv.ProductName,
			&rv.Rating,
			&rv.ReviewText,
			&rv.CreatedAt,
			&rv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, rv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	if reviews == nil {
		reviews = []domain.Review{}
	}

	return reviews, nil
}
