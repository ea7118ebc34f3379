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
	"github.com/TrioProject-10/Smart-Buy-Main/pkg/slug"
)

// CatalogService implements the business logic for categories, brands, and
// store-wide statistics.
type CatalogService struct {
	categories repository.CategoryRepository
	brands     repository.BrandRepository
	products   repository.ProductRepository
	logger     *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	categories repository.CategoryRepository,
	brands repository.BrandRepository,
	products repository.ProductRepository,
	logger *slog.Logger,
) *CatalogService {
	return &CatalogService{
		categories: categories,
		brands:     brands,
		products:   products,
		logger:     logger,
	}
}

// CreateCategoryInput holds the parameters for creating a category.
type CreateCategoryInput struct {
	Name      string
	SortOrder int
	IsActive  *bool
}

// UpdateCategoryInput holds the parameters for updating a category.
type UpdateCategoryInput struct {
	Name      *string
	SortOrder *int
	IsActive  *bool
}

// CreateCategory creates a new category with a slug derived from its name.
func (s *CatalogService) CreateCategory(ctx context.Context, input *CreateCategoryInput) (*domain.Category, error) {
	if input.Name == "" {
		return nil, apperrors.InvalidInput("category name is required")
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	now := time.Now().UTC()
	category := &domain.Category{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Slug:      slug.Generate(input.Name),
		SortOrder: input.SortOrder,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.logger.InfoContext(ctx, "category created",
		slog.String("category_id", category.ID),
		slog.String("slug", category.Slug),
	)

	return category, nil
}

// ListCategories returns all categories ordered by sort order.
func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// GetCategory retrieves a category by its ID.
func (s *CatalogService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return category, nil
}

// UpdateCategory applies partial updates to an existing category. Renaming
// a category regenerates its slug.
func (s *CatalogService) UpdateCategory(ctx context.Context, id string, input *UpdateCategoryInput) (*domain.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category for update: %w", err)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperrors.InvalidInput("category name must not be empty")
		}
		category.Name = *input.Name
		category.Slug = slug.Generate(*input.Name)
	}

	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}

	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	s.logger.InfoContext(ctx, "category updated",
		slog.String("category_id", category.ID),
		slog.String("slug", category.Slug),
	)

	return category, nil
}

// DeleteCategory removes a category by its ID.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	s.logger.InfoContext(ctx, "category deleted",
		slog.String("category_id", id),
	)

	return nil
}

// CreateBrandInput holds the parameters for creating a brand.
type CreateBrandInput struct {
	Name     string
	LogoURL  *string
	IsActive *bool
}

// UpdateBrandInput holds the parameters for updating a brand.
type UpdateBrandInput struct {
	Name     *string
	LogoURL  *string
	IsActive *bool
}

// CreateBrand creates a new brand with a slug derived from its name.
func (s *CatalogService) CreateBrand(ctx context.Context, input *CreateBrandInput) (*domain.Brand, error) {
	if input.Name == "" {
		return nil, apperrors.InvalidInput("brand name is required")
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	now := time.Now().UTC()
	brand := &domain.Brand{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Slug:      slug.Generate(input.Name),
		LogoURL:   input.LogoURL,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.brands.Create(ctx, brand); err != nil {
		return nil, fmt.Errorf("create brand: %w", err)
	}

	s.logger.InfoContext(ctx, "brand created",
		slog.String("brand_id", brand.ID),
		slog.String("slug", brand.Slug),
	)

	return brand, nil
}

// ListBrands returns all brands ordered by name.
func (s *CatalogService) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	brands, err := s.brands.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	return brands, nil
}

// GetBrand retrieves a brand by its ID.
func (s *CatalogService) GetBrand(ctx context.Context, id string) (*domain.Brand, error) {
	brand, err := s.brands.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get brand: %w", err)
	}
	return brand, nil
}

// UpdateBrand applies partial updates to an existing brand. Renaming a brand
// regenerates its slug.
func (s *CatalogService) UpdateBrand(ctx context.Context, id string, input *UpdateBrandInput) (*domain.Brand, error) {
	brand, err := s.brands.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get brand for update: %w", err)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperrors.InvalidInput("brand name must not be empty")
		}
		brand.Name = *input.Name
		brand.Slug = slug.Generate(*input.Name)
	}

	if input.LogoURL != nil {
		brand.LogoURL = input.LogoURL
	}

	if input.IsActive != nil {
		brand.IsActive = *input.IsActive
	}

	if err := s.brands.Update(ctx, brand); err != nil {
		return nil, fmt.Errorf("update brand: %w", err)
	}

	s.logger.InfoContext(ctx, "brand updated",
		slog.String("brand_id", brand.ID),
		slog.String("slug", brand.Slug),
	)

	return brand, nil
}

// DeleteBrand removes a brand by its ID.
func (s *CatalogService) DeleteBrand(ctx context.Context, id string) error {
	if err := s.brands.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}

	s.logger.InfoContext(ctx, "brand deleted",
		slog.String("brand_id", id),
	)

	return nil
}

// Stats collects store-wide counts for the admin dashboard.
func (s *CatalogService) Stats(ctx context.Context) (*domain.StoreStats, error) {
	total, active, err := s.products.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	categories, err := s.categories.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}

	brands, err := s.brands.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count brands: %w", err)
	}

	return &domain.StoreStats{
		TotalProducts:  total,
		ActiveProducts: active,
		Categories:     categories,
		Brands:         brands,
	}, nil
}
