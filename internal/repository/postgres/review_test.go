package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/TrioProject-10/Smart-Buy-Main/pkg/errors"
	"github.com/TrioProject-10/Smart-Buy-Main/internal/domain"
)

var reviewColumns = []string{
	"id", "user_id", "product_id", "product_name", "rating", "review_text",
	"created_at", "updated_at",
}

var reviewColumnsWithAuthor = []string{
	"id", "user_id", "product_id", "product_name", "rating", "review_text",
	"created_at", "updated_at", "full_name",
}

func sampleReview() domain.Review {
	return domain.Review{
		ID:          "review-1",
		UserID:      "user-1",
		ProductID:   1704180124,
		ProductName: "Widget",
		Rating:      5,
		ReviewText:  "Highly recommended.",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func reviewRow(rv domain.Review) []any {
	return []any{
		rv.ID, rv.UserID, rv.ProductID, rv.ProductName, rv.Rating, rv.ReviewText,
		rv.CreatedAt, rv.UpdatedAt,
	}
}

func TestReviewRepository_Create_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewReviewRepository(mock)

	rv := sampleReview()
	mock.ExpectExec("INSERT INTO reviews").
		WithArgs(rv.ID, rv.UserID, rv.ProductID, rv.ProductName, rv.Rating, rv.ReviewText, rv.CreatedAt, rv.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), &rv)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Create_Error(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewReviewRepository(mock)

	rv := sampleReview()
	mock.ExpectExec("INSERT INTO reviews").
		WithArgs(rv.ID, rv.UserID, rv.ProductID, rv.ProductName, rv.Rating, rv.ReviewText, rv.CreatedAt, rv.UpdatedAt).
		WillReturnError(errors.New("connection refused"))

	err := repo.Create(context.Background(), &rv)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_GetByID_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewReviewRepository(mock)

	rv := sampleReview()
	mock.ExpectQuery("SELECT .+ FROM reviews WHERE id").
		WithArgs(rv.ID).
		WillReturnRows(
			pgxmock.NewRows(reviewColumns).AddRow(reviewRow(rv)...),
		)

	result, err := repo.GetByID(context.Background(), rv.ID)
	require.NoError(t, err)
	assert.Equal(t, rv.ID, result.ID)
	assert.Equal(t, rv.UserID, result.UserID)
	assert.Equal(t, rv.ProductID, result.ProductID)
	assert.Equal(t, rv.Rating, result.Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_GetByID_NotFound(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewReviewRepository(mock)

	mock.ExpectQuery("SELECT .+ FROM reviews WHERE id").
		WithArgs("missing-id").
		WillReturnError(pgx.ErrNoRows)

	result, err := repo.GetByID(context.Background(), "missing-id")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_ListByProductID_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewReviewRepository(mock)

	rv := sampleReview()
	mock.ExpectQuery("SELECT .+ FROM reviews WHERE product_id").
		WithArgs(rv.ProductID).
		WillReturnRows(
			pgxmock.NewRows(reviewColumns).AddRow(reviewRow(rv)...),
		)

	reviews, err := repo.ListByProductID(context.Background(), rv.ProductID)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
	assert.Equal(t, rv.ID, reviews[0].ID)
	assert.Equal(t, rv.ProductName, reviews[0].ProductName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_ListByProductID_Empty(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewReviewRepository(mock)

	mock.ExpectQuery("SELECT .+ FROM reviews WHERE product_id").
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows(reviewColumns))

	reviews, err := repo.ListByProductID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, []domain.Review{}, reviews)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_ListByUserID_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewReviewRepository(mock)

	rv := sampleReview()
	mock.ExpectQuery("SELECT .+ FROM reviews WHERE user_id").
		WithArgs(rv.UserID).
		WillReturnRows(
			pgxmock.NewRows(reviewColumns).AddRow(reviewRow(rv)...),
		)

	reviews, err := repo.ListByUserID(context.Background(), rv.UserID)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
	assert.Equal(t, rv.UserID, reviews[0].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_ListAll_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewReviewRepository(mock)

	rv := sampleReview()
	row := append(reviewRow(rv), "Jane Doe")

	mock.ExpectQuery("SELECT .+ FROM reviews r").
		WithArgs(50).
		WillReturnRows(
			pgxmock.NewRows(reviewColumnsWithAuthor).AddRow(row...),
		)

	reviews, err := repo.ListAll(context.Background(), 50)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
	assert.Equal(t, rv.ID, reviews[0].ID)
	assert.Equal(t, "Jane Doe", reviews[0].AuthorName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_ListAll_DefaultLimit(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewReviewRepository(mock)

	mock.ExpectQuery("SELECT .+ FROM reviews r").
		WithArgs(100).
		WillReturnRows(pgxmock.NewRows(reviewColumnsWithAuthor))

	reviews, err := repo.ListAll(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []domain.ReviewWithAuthor{}, reviews)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Update_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewReviewRepository(mock)

	rv := sampleReview()
	rv.Rating = 3
	rv.ReviewText = "Changed my mind."

	mock.ExpectExec("UPDATE reviews").
		WithArgs(rv.Rating, rv.ReviewText, pgxmock.AnyArg(), rv.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Update(context.Background(), &rv)
	assert.NoError(t, err)
	assert.True(t, rv.UpdatedAt.After(now))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Update_NotFound(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewReviewRepository(mock)

	rv := sampleReview()
	rv.ID = "nonexistent-id"

	mock.ExpectExec("UPDATE reviews").
		WithArgs(rv.Rating, rv.ReviewText, pgxmock.AnyArg(), rv.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), &rv)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Delete_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewReviewRepository(mock)

	mock.ExpectExec("DELETE FROM reviews WHERE").
		WithArgs("review-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Delete(context.Background(), "review-1")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Delete_NotFound(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewReviewRepository(mock)

	mock.ExpectExec("DELETE FROM reviews WHERE").
		WithArgs("missing-id").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), "missing-id")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Summary_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewReviewRepository(mock)

	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(int64(1704180124)).
		WillReturnRows(
			pgxmock.NewRows([]string{"avg", "count"}).AddRow(4.56, 12),
		)

	summary, err := repo.Summary(context.Background(), 1704180124)
	require.NoError(t, err)
	assert.Equal(t, 4.6, summary.Average) // rounded to 1 decimal
	assert.Equal(t, 12, summary.Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Summary_NoReviews(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewReviewRepository(mock)

	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(int64(42)).
		WillReturnRows(
			pgxmock.NewRows([]string{"avg", "count"}).AddRow(0.0, 0),
		)

	summary, err := repo.Summary(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.Average)
	assert.Equal(t, 0, summary.Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
