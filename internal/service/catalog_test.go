package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/TrioProject-10/Smart-Buy-Main/pkg/errors"
	"github.com/TrioProject-10/Smart-Buy-Main/internal/domain"
)

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) Create(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *mockCategoryRepo) ListAll(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *mockCategoryRepo) Update(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCategoryRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockBrandRepo struct {
	mock.Mock
}

func (m *mockBrandRepo) Create(ctx context.Context, brand *domain.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *mockBrandRepo) GetByID(ctx context.Context, id string) (*domain.Brand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Brand), args.Error(1)
}

func (m *mockBrandRepo) ListAll(ctx context.Context) ([]domain.Brand, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Brand), args.Error(1)
}

func (m *mockBrandRepo) Update(ctx context.Context, brand *domain.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *mockBrandRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockBrandRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type catalogFixture struct {
	categories *mockCategoryRepo
	brands     *mockBrandRepo
	products   *mockProductRepository
	service    *CatalogService
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()
	categories := new(mockCategoryRepo)
	brands := new(mockBrandRepo)
	products := new(mockProductRepository)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &catalogFixture{
		categories: categories,
		brands:     brands,
		products:   products,
		service:    NewCatalogService(categories, brands, products, logger),
	}
}

func TestCatalogService_CreateCategory_Success(t *testing.T) {
	f := newCatalogFixture(t)

	f.categories.On("Create", mock.Anything, mock.AnythingOfType("*domain.Category")).Return(nil)

	category, err := f.service.CreateCategory(context.Background(), &CreateCategoryInput{
		Name:      "Home & Garden",
		SortOrder: 2,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, category.ID)
	assert.Equal(t, "home-garden", category.Slug)
	assert.Equal(t, 2, category.SortOrder)
	assert.True(t, category.IsActive)
}

func TestCatalogService_CreateCategory_MissingName(t *testing.T) {
	f := newCatalogFixture(t)

	_, err := f.service.CreateCategory(context.Background(), &CreateCategoryInput{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	f.categories.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCatalogService_UpdateCategory_RegeneratesSlug(t *testing.T) {
	f := newCatalogFixture(t)

	stored := &domain.Category{ID: "cat-1", Name: "Electronics", Slug: "electronics", IsActive: true}
	f.categories.On("GetByID", mock.Anything, "cat-1").Return(stored, nil)
	f.categories.On("Update", mock.Anything, mock.AnythingOfType("*domain.Category")).Return(nil)

	name := "Consumer Electronics"
	category, err := f.service.UpdateCategory(context.Background(), "cat-1", &UpdateCategoryInput{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "consumer-electronics", category.Slug)
}

func TestCatalogService_CreateBrand_Success(t *testing.T) {
	f := newCatalogFixture(t)

	f.brands.On("Create", mock.Anything, mock.AnythingOfType("*domain.Brand")).Return(nil)

	brand, err := f.service.CreateBrand(context.Background(), &CreateBrandInput{Name: "Acme Corp."})

	require.NoError(t, err)
	assert.Equal(t, "acme-corp", brand.Slug)
	assert.True(t, brand.IsActive)
}

func TestCatalogService_CreateBrand_Duplicate(t *testing.T) {
	f := newCatalogFixture(t)

	f.brands.On("Create", mock.Anything, mock.AnythingOfType("*domain.Brand")).
		Return(apperrors.AlreadyExists("brand", "slug", "acme"))

	_, err := f.service.CreateBrand(context.Background(), &CreateBrandInput{Name: "Acme"})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
}

func TestCatalogService_DeleteBrand_NotFound(t *testing.T) {
	f := newCatalogFixture(t)

	f.brands.On("Delete", mock.Anything, "missing-id").Return(apperrors.NotFound("brand", "missing-id"))

	err := f.service.DeleteBrand(context.Background(), "missing-id")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCatalogService_Stats(t *testing.T) {
	f := newCatalogFixture(t)

	f.products.On("Counts", mock.Anything).Return(42, 35, nil)
	f.categories.On("Count", mock.Anything).Return(6, nil)
	f.brands.On("Count", mock.Anything).Return(9, nil)

	stats, err := f.service.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, stats.TotalProducts)
	assert.Equal(t, 35, stats.ActiveProducts)
	assert.Equal(t, 6, stats.Categories)
	assert.Equal(t, 9, stats.Brands)
}
