package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/TrioProject-10/Smart-Buy-Main/pkg/errors"
	"github.com/TrioProject-10/Smart-Buy-Main/internal/domain"
	"github.com/TrioProject-10/Smart-Buy-Main/internal/repository"
)

// ReviewEventPublisher publishes review lifecycle events.
type ReviewEventPublisher interface {
	PublishReviewCreated(ctx context.Context, review *domain.Review) error
	PublishReviewUpdated(ctx context.Context, review *domain.Review) error
	PublishReviewDeleted(ctx context.Context, id string, productID int64) error
}

// SubmitReviewInput holds the parameters for submitting a review.
type SubmitReviewInput struct {
	UserID      string
	ProductName string
	Rating      int
	ReviewText  string
}

// UpdateReviewInput holds the parameters for updating a review.
type UpdateReviewInput struct {
	UserID     string
	ReviewID   string
	Rating     int
	ReviewText string
}

// ProductReviews bundles a product's reviews with its aggregate rating.
type ProductReviews struct {
	ProductID int64                `json:"product_id"`
	Reviews   []domain.Review      `json:"reviews"`
	Summary   domain.RatingSummary `json:"summary"`
}

// ReviewService implements the business logic for review operations.
type ReviewService struct {
	repo   repository.ReviewRepository
	events ReviewEventPublisher
	logger *slog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(repo repository.ReviewRepository, events ReviewEventPublisher, logger *slog.Logger) *ReviewService {
	return &ReviewService{
		repo:   repo,
		events: events,
		logger: logger,
	}
}

// Submit creates a new review on behalf of the given user. The product key
// is derived from the product name, so the same name always lands on the
// same product bucket.
func (s *ReviewService) Submit(ctx context.Context, input *SubmitReviewInput) (*domain.Review, error) {
	if input.UserID == "" {
		return nil, apperrors.Unauthorized("authentication required to submit a review")
	}
	if input.ProductName == "" {
		return nil, apperrors.InvalidInput("product_name is required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, apperrors.InvalidInput("rating must be between 1 and 5")
	}
	if input.ReviewText == "" {
		return nil, apperrors.InvalidInput("review_text is required")
	}

	now := time.Now().UTC()
	review := &domain.Review{
		ID:          uuid.New().String(),
		UserID:      input.UserID,
		ProductID:   domain.DeriveProductID(input.ProductName),
		ProductName: input.ProductName,
		Rating:      input.Rating,
		ReviewText:  input.ReviewText,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.logger.InfoContext(ctx, "review created",
		slog.String("review_id", review.ID),
		slog.Int64("product_id", review.ProductID),
		slog.String("user_id", review.UserID),
		slog.Int("rating", review.Rating),
	)

	if err := s.events.PublishReviewCreated(ctx, review); err != nil {
		s.logger.WarnContext(ctx, "failed to publish review.created event",
			slog.String("review_id", review.ID),
			slog.String("error", err.Error()),
		)
	}

	return review, nil
}

// ListByProduct returns a product's reviews with the aggregate rating.
// Backend failures degrade to an empty result rather than an error page.
func (s *ReviewService) ListByProduct(ctx context.Context, productName string) *ProductReviews {
	productID := domain.DeriveProductID(productName)

	result := &ProductReviews{
		ProductID: productID,
		Reviews:   []domain.Review{},
	}

	reviews, err := s.repo.ListByProductID(ctx, productID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list product reviews",
			slog.Int64("product_id", productID),
			slog.String("error", err.Error()),
		)
		return result
	}
	result.Reviews = reviews

	summary, err := s.repo.Summary(ctx, productID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to get rating summary",
			slog.Int64("product_id", productID),
			slog.String("error", err.Error()),
		)
		return result
	}
	result.Summary = *summary

	return result
}

// ListByUser returns all reviews written by the given user, newest first.
// Backend failures degrade to an empty slice.
func (s *ReviewService) ListByUser(ctx context.Context, userID string) ([]domain.Review, error) {
	if userID == "" {
		return nil, apperrors.Unauthorized("authentication required to list your reviews")
	}

	reviews, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list user reviews",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		return []domain.Review{}, nil
	}

	return reviews, nil
}

// ListAll returns the most recent reviews across all products, joined with
// each reviewer's display name. Backend failures degrade to an empty slice.
func (s *ReviewService) ListAll(ctx context.Context, limit int) []domain.ReviewWithAuthor {
	reviews, err := s.repo.ListAll(ctx, limit)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list reviews",
			slog.String("error", err.Error()),
		)
		return []domain.ReviewWithAuthor{}
	}

	return reviews
}

// Rating returns the aggregate rating for the product with the given name.
// Backend failures degrade to a zero summary.
func (s *ReviewService) Rating(ctx context.Context, productName string) *domain.RatingSummary {
	productID := domain.DeriveProductID(productName)

	summary, err := s.repo.Summary(ctx, productID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to get rating summary",
			slog.Int64("product_id", productID),
			slog.String("error", err.Error()),
		)
		return &domain.RatingSummary{}
	}

	return summary
}

// Update modifies the rating and text of a review owned by the caller.
// Reviews owned by other users are reported as not found.
func (s *ReviewService) Update(ctx context.Context, input *UpdateReviewInput) (*domain.Review, error) {
	if input.UserID == "" {
		return nil, apperrors.Unauthorized("authentication required to update a review")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, apperrors.InvalidInput("rating must be between 1 and 5")
	}
	if input.ReviewText == "" {
		return nil, apperrors.InvalidInput("review_text is required")
	}

	review, err := s.repo.GetByID(ctx, input.ReviewID)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}

	if review.UserID != input.UserID {
		return nil, apperrors.NotFound("review", input.ReviewID)
	}

	review.Rating = input.Rating
	review.ReviewText = input.ReviewText

	if err := s.repo.Update(ctx, review); err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}

	s.logger.InfoContext(ctx, "review updated",
		slog.String("review_id", review.ID),
		slog.String("user_id", review.UserID),
		slog.Int("rating", review.Rating),
	)

	if err := s.events.PublishReviewUpdated(ctx, review); err != nil {
		s.logger.WarnContext(ctx, "failed to publish review.updated event",
			slog.String("review_id", review.ID),
			slog.String("error", err.Error()),
		)
	}

	return review, nil
}

// Delete removes a review owned by the caller. Reviews owned by other users
// are reported as not found.
func (s *ReviewService) Delete(ctx context.Context, userID, reviewID string) error {
	if userID == "" {
		return apperrors.Unauthorized("authentication required to delete a review")
	}

	review, err := s.repo.GetByID(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("get review: %w", err)
	}

	if review.UserID != userID {
		return apperrors.NotFound("review", reviewID)
	}

	if err := s.repo.Delete(ctx, reviewID); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	s.logger.InfoContext(ctx, "review deleted",
		slog.String("review_id", reviewID),
		slog.String("user_id", userID),
	)

	if err := s.events.PublishReviewDeleted(ctx, reviewID, review.ProductID); err != nil {
		s.logger.WarnContext(ctx, "failed to publish review.deleted event",
			slog.String("review_id", reviewID),
			slog.String("error", err.Error()),
		)
	}

	return nil
}
